package config

import "sync"

const (
	ServiceVersion    = "0.0.1"
	ServiceAPIVersion = "v1"
)

var (
	si   *serviceInfo
	once sync.Once
)

// getServiceInfo provides serviceInfo as a singleton
func getServiceInfo() *serviceInfo {
	once.Do(func() {
		si = &serviceInfo{
			name: ServiceName,
			description: "The buggy website is a fault injection target: its crash route always fails so an" +
				" uptime agent can be exercised against a known outage.",
			version:    ServiceVersion,
			apiVersion: ServiceAPIVersion,
		}
	})

	return si
}

// serviceInfo is intended to be a read-only singleton object for static service info
type serviceInfo struct {
	name        string
	description string
	version     string
	apiVersion  string
}

func Name() string {
	return getServiceInfo().name
}

func Description() string {
	return getServiceInfo().description
}

func Version() string {
	return getServiceInfo().version
}

func APIVersion() string {
	return getServiceInfo().apiVersion
}
