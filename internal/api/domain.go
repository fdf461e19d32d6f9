package api

import (
	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/diagnosis"
	"github.com/naz99/Autism-App/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Accounts  accounts.System
	Diagnosis diagnosis.System
	Reports   reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	accountsSystem := accounts.New(
		runtime.Database.Connection(),
		runtime.Auth,
		runtime.Logger,
	)

	diagnosisSystem := diagnosis.New(
		runtime.Artifacts,
		runtime.Auth,
		runtime.Logger,
	)

	reportsSystem := reports.New(
		diagnosisSystem,
		runtime.Storage,
		runtime.Auth,
		runtime.Logger,
	)

	return &Domain{
		Accounts:  accountsSystem,
		Diagnosis: diagnosisSystem,
		Reports:   reportsSystem,
	}
}
