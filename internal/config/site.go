package config

import "os"

// SiteConfig carries the handful of values the services need about the
// outside world: where the SPA lives (for reset links) and what the
// school calls itself in outgoing mail.
type SiteConfig struct {
	FrontendURL string
	SchoolName  string
}

func NewSiteConfig() *SiteConfig {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}
	name := os.Getenv("SCHOOL_NAME")
	if name == "" {
		name = "RK School"
	}
	return &SiteConfig{FrontendURL: frontend, SchoolName: name}
}
