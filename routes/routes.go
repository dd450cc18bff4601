package routes

import (
	"net/http"

	"campushub/admin"
	"campushub/auth"
	"campushub/events"
	"campushub/groups"
	"campushub/middleware"
	"campushub/pay"
	"campushub/profile"
	"campushub/ratelim"
	"campushub/register"
	"campushub/roles"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rateLimiter.Limit(middleware.Authenticate(auth.RefreshToken)))
	router.POST("/api/auth/reauth", rateLimiter.Limit(middleware.Authenticate(auth.Reauthenticate)))
}

func AddRoleRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/roles/assign", rateLimiter.Limit(middleware.Authenticate(middleware.RequireRole("admin")(roles.Assign))))
}

func AddProfileRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile/details", rateLimiter.Limit(middleware.Authenticate(profile.UpdateDetails)))
	router.POST("/api/profile/photo", rateLimiter.Limit(middleware.Authenticate(profile.EditProfilePhoto)))
}

func AddEventsRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/events/events", rateLimiter.Limit(events.GetEvents))
	router.GET("/api/events/upcoming", rateLimiter.Limit(events.GetUpcomingEvents))
	router.GET("/api/events/mine", middleware.Authenticate(events.GetMyEvents))
	router.GET("/api/events/event/:eventid", events.GetEvent)
	router.POST("/api/events/event", middleware.Authenticate(middleware.RequireRole("host", "admin")(events.CreateEvent)))
	router.PUT("/api/events/event/:eventid", middleware.Authenticate(middleware.RequireRole("host", "admin")(events.EditEvent)))
	router.DELETE("/api/events/event/:eventid", middleware.Authenticate(middleware.RequireRole("host", "admin")(middleware.RequireReauth(events.DeleteEvent))))
}

func AddGroupRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/groups", rateLimiter.Limit(middleware.Authenticate(groups.CreateGroup)))
	router.GET("/api/groups/mine", middleware.Authenticate(groups.GetMyGroup))
	router.POST("/api/groups/join", rateLimiter.Limit(middleware.Authenticate(groups.JoinGroup)))
	router.POST("/api/groups/leave", rateLimiter.Limit(middleware.Authenticate(groups.LeaveGroup)))
	router.POST("/api/groups/transfer", rateLimiter.Limit(middleware.Authenticate(groups.TransferLeadership)))
	router.DELETE("/api/groups/members/:uid", rateLimiter.Limit(middleware.Authenticate(groups.RemoveMember)))
}

func AddRegisterRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/register/event/:eventid", rateLimiter.Limit(middleware.Authenticate(middleware.RequireReauth(register.RegisterForEvent))))
	router.POST("/api/register/event/:eventid/verify", rateLimiter.Limit(middleware.Authenticate(register.VerifyPayment)))
	router.GET("/api/register/event/:eventid/receipt", middleware.Authenticate(register.PrintReceipt))
	router.GET("/api/register/mine", middleware.Authenticate(register.GetMyRegistrations))
}

func AddPayRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/razorpay/create-order", rateLimiter.Limit(middleware.Authenticate(pay.CreateOrderHandler)))
}

func AddAdminRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/admin/events", rateLimiter.Limit(middleware.Authenticate(middleware.RequireRole("admin")(admin.GetEventsOverview))))
}
