package routes

import (
	"net/http"

	"congreso/auth"
	"congreso/certificates"
	"congreso/events"
	"congreso/filedrop"
	"congreso/live"
	"congreso/middleware"
	"congreso/planner"
	"congreso/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddEventsRoutes(router *httprouter.Router) {
	router.GET("/api/events/events", ratelim.RateLimit(events.GetEvents))
	router.GET("/api/events/events/count", ratelim.RateLimit(events.GetEventsCount))
	router.POST("/api/events/event", middleware.Authenticate(events.CreateEvent))
	router.GET("/api/events/event/:eventid", events.GetEvent)
	router.PUT("/api/events/event/:eventid", middleware.Authenticate(events.EditEvent))
	router.DELETE("/api/events/event/:eventid", middleware.RequireRole("admin", events.DeleteEvent))
	router.PUT("/api/events/event/:eventid/slot", middleware.RequireRole("admin", events.AssignSlot))
	router.POST("/api/events/import", middleware.RequireRole("admin", events.ImportCSV))
	router.POST("/api/events/event/:eventid/banner", middleware.Authenticate(filedrop.UploadBanner))
}

func AddScheduleRoutes(router *httprouter.Router, p *planner.Planner) {
	router.GET("/api/schedule/conflicts", middleware.RequireRole("admin", p.GetConflicts))
	router.GET("/api/schedule/movements", middleware.RequireRole("admin", p.GetMovements))
	router.POST("/api/schedule/movements/apply", middleware.RequireRole("admin", p.ApplyMovements))
	router.GET("/api/schedule/rooms/:day", middleware.Authenticate(p.GetRoomMap))
	router.GET("/api/schedule/incomplete", middleware.RequireRole("admin", p.GetIncomplete))
	router.GET("/api/schedule/log", middleware.RequireRole("admin", p.GetMovementLog))
}

func AddCertificateRoutes(router *httprouter.Router) {
	router.POST("/api/certificates", middleware.RequireRole("admin", certificates.IssueCertificate))
	router.GET("/api/certificates/validate/:folio", ratelim.RateLimit(certificates.ValidateCertificate))
	router.GET("/api/certificates/print/:folio", ratelim.RateLimit(certificates.PrintCertificate))
	router.DELETE("/api/certificates/:folio", middleware.RequireRole("admin", certificates.RevokeCertificate))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/schedule/:day", middleware.OptionalAuth(live.ScheduleSocket(hub)))
}
