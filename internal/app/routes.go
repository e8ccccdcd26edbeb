package app

import (
	"github.com/gorilla/mux"
	"github.com/saati/saati/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Work log
	r.HandleFunc("/api/log", deps.WorkLogHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/log", deps.WorkLogHandler.Create).Methods("POST")
	r.HandleFunc("/api/log/{logId}", deps.WorkLogHandler.Update).Methods("PUT")
	r.HandleFunc("/api/log/{logId}", deps.WorkLogHandler.Delete).Methods("DELETE")

	// Shift
	r.HandleFunc("/api/shift", deps.ShiftHandler.StartShift).Methods("POST")
	r.HandleFunc("/api/shift/current", deps.ShiftHandler.GetCurrentShift).Methods("GET")
	r.HandleFunc("/api/shift/current", deps.ShiftHandler.UpdateCurrentShift).Methods("PATCH")
	r.HandleFunc("/api/shift/current/status", deps.ShiftHandler.FinishShift).Methods("PATCH")
	r.HandleFunc("/api/shift/current", deps.ShiftHandler.DiscardShift).Methods("DELETE")

	// Profile
	r.HandleFunc("/api/profile", deps.ProfileHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/profile", deps.ProfileHandler.SaveProfile).Methods("PUT")
	r.HandleFunc("/api/profile/holidays/import", deps.ProfileHandler.ImportHolidays).Methods("POST")

	// Report
	r.HandleFunc("/api/report", deps.ReportHandler.GetReport).Methods("GET")

	// Tasks
	r.HandleFunc("/api/task", deps.TaskHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/task", deps.TaskHandler.Create).Methods("POST")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.Update).Methods("PUT")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.Delete).Methods("DELETE")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")
}
