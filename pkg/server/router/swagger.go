package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tbd54566975/buggy-website/config"
	"github.com/tbd54566975/buggy-website/doc"
)

var swaggerHandler = ginSwagger.WrapHandler(swaggerFiles.Handler)

func init() {
	// the served doc reports the running build, not the annotations it was generated from
	doc.SwaggerInfo.Version = config.Version()
	doc.SwaggerInfo.Description = config.Description()
}

// Swagger wraps the gin swagger handler in our framework handler for usage in a router.
func Swagger(c *gin.Context) error {
	swaggerHandler(c)
	return nil
}
