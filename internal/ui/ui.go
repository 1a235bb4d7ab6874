package ui

import (
	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/internal/config"
)

type UI func(<-chan error, *partybus.Subscription, *config.Application) error
