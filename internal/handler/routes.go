package handler

import (
	"net/http"

	"github.com/msomdec/skill-swap/internal/service"
	"github.com/msomdec/skill-swap/internal/store"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	st *store.Store,
	auth *service.AuthService,
	directory *service.DirectoryService,
	swaps *service.SwapService,
	admin *service.AdminService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	directoryHandler := NewDirectoryHandler(directory)
	profileHandler := NewProfileHandler(st)
	swapHandler := NewSwapHandler(swaps, st)
	adminHandler := NewAdminHandler(admin)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /", OptionalAuth(auth, http.HandlerFunc(HandleHome)))

	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/users", OptionalAuth(auth, http.HandlerFunc(directoryHandler.HandleList)))
	mux.Handle("GET /api/users/{id}", OptionalAuth(auth, http.HandlerFunc(directoryHandler.HandleGet)))
	mux.HandleFunc("GET /api/announcements", directoryHandler.HandleAnnouncements)

	mux.Handle("PUT /api/profile", RequireAuth(auth, http.HandlerFunc(profileHandler.HandleUpdate)))

	mux.Handle("GET /api/requests", RequireAuth(auth, http.HandlerFunc(swapHandler.HandleList)))
	mux.Handle("POST /api/requests", RequireAuth(auth, http.HandlerFunc(swapHandler.HandleCreate)))
	mux.Handle("POST /api/requests/{id}/accept", RequireAuth(auth, http.HandlerFunc(swapHandler.HandleAccept)))
	mux.Handle("POST /api/requests/{id}/reject", RequireAuth(auth, http.HandlerFunc(swapHandler.HandleReject)))
	mux.Handle("DELETE /api/requests/{id}", RequireAuth(auth, http.HandlerFunc(swapHandler.HandleDelete)))
	mux.Handle("GET /api/requests/feed", RequireAuth(auth, http.HandlerFunc(swapHandler.HandleFeed)))

	mux.Handle("GET /api/admin/stats", RequireAdmin(auth, http.HandlerFunc(adminHandler.HandleStats)))
	mux.Handle("POST /api/admin/users/{id}/ban", RequireAdmin(auth, http.HandlerFunc(adminHandler.HandleBan)))
	mux.Handle("POST /api/admin/users/{id}/unban", RequireAdmin(auth, http.HandlerFunc(adminHandler.HandleUnban)))
	mux.Handle("POST /api/admin/announcements", RequireAdmin(auth, http.HandlerFunc(adminHandler.HandleAnnounce)))
}
