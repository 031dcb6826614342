package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                           // The running version of the HiveBudget backend
	GoVersion string `json:"goVersion" example:"go1.25.5"`                      // Go version the backend was built with
	Revision  string `json:"revision" example:"4f1c2b9e0d7a" default:""`        // VCS revision of the build, if known
	Modified  bool   `json:"modified" example:"false" default:"false"`          // Was the working tree modified at build time?
	BuiltAt   string `json:"builtAt" example:"2026-05-01T09:30:00Z" default:""` // VCS commit time of the build, if known
}

// Info returns the build information for a version string.
func Info(version string) Object {
	info := Object{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, s := range build.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.BuiltAt = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", Get(Info(version)))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and details about the build
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(info Object) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: info})
	}
}
