package handlers

import (
	"motoroutes/internal/membership"
	"motoroutes/internal/repositories"
	"motoroutes/internal/services"
)

// Long-lived collaborators, wired once at startup.
var (
	Store      *services.ItineraryService
	Completion *services.CompletionService
	Media      *services.MediaService
	Overlay    *services.OverlayService
	Membership *membership.Client
	Riders     repositories.RiderRepository

	jwtSecret []byte
)

// Deps bundles everything the handlers need.
type Deps struct {
	Store      *services.ItineraryService
	Completion *services.CompletionService
	Media      *services.MediaService
	Overlay    *services.OverlayService
	Membership *membership.Client
	Riders     repositories.RiderRepository
	JWTSecret  []byte
}

// Wire installs the collaborators. Call once from main before serving.
func Wire(d Deps) {
	Store = d.Store
	Completion = d.Completion
	Media = d.Media
	Overlay = d.Overlay
	Membership = d.Membership
	Riders = d.Riders
	jwtSecret = d.JWTSecret
}
