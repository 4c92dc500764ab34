package domain

import (
	"strings"
	"time"

	"github.com/orgball2608/motivate-ai/pkg/errors"
)

type Platform string

const (
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
)

// Platforms lists every supported destination in display order.
func Platforms() []Platform {
	return []Platform{YouTube, Instagram}
}

func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case YouTube:
		return YouTube, nil
	case Instagram:
		return Instagram, nil
	}
	return "", errors.InvalidInput("unknown platform: " + s)
}

func (p Platform) String() string { return string(p) }

// Credentials are what a successful handshake yields.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Username     string
	Expiry       time.Time
}

type AccountConnection struct {
	Connected    bool
	Username     *string
	AccessToken  string
	RefreshToken string
}

func NewConnection(c Credentials) AccountConnection {
	username := c.Username
	return AccountConnection{
		Connected:    true,
		Username:     &username,
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
	}
}

// Connections always holds an entry for every platform.
type Connections struct {
	YouTube   AccountConnection
	Instagram AccountConnection
}

func (c Connections) Get(p Platform) AccountConnection {
	if p == Instagram {
		return c.Instagram
	}
	return c.YouTube
}

func (c Connections) With(p Platform, conn AccountConnection) Connections {
	switch p {
	case YouTube:
		c.YouTube = conn
	case Instagram:
		c.Instagram = conn
	}
	return c
}

// Connected returns connected platforms in display order.
func (c Connections) Connected() []Platform {
	var out []Platform
	for _, p := range Platforms() {
		if c.Get(p).Connected {
			out = append(out, p)
		}
	}
	return out
}

func (c Connections) AnyConnected() bool {
	return len(c.Connected()) > 0
}
