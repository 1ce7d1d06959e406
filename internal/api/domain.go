package api

import (
	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/mailer"
	"github.com/JaimeStill/bellman/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Campaigns campaigns.System
	Mailer    mailer.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	campaignsSystem := workflow.NewSystem(&workflow.Runtime{
		LLM:      runtime.LLM,
		Research: runtime.Research,
		Profiles: runtime.Profiles,
		Cache:    runtime.Cache,
		Metrics:  runtime.Metrics,
		Logger:   runtime.Logger,
	})

	return &Domain{
		Campaigns: campaignsSystem,
		Mailer:    runtime.Mailer,
	}
}
