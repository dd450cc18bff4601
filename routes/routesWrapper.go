package routes

import (
	"campushub/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddRoleRoutes(router, rateLimiter)
	AddProfileRoutes(router, rateLimiter)
	AddEventsRoutes(router, rateLimiter)
	AddGroupRoutes(router, rateLimiter)
	AddRegisterRoutes(router, rateLimiter)
	AddPayRoutes(router, rateLimiter)
	AddAdminRoutes(router, rateLimiter)
	AddStaticRoutes(router)
}
