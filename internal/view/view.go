// Package view holds the server-rendered components. Components are plain
// templ.Component values so handlers can render them directly or hand them
// to datastar for SSE patching.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Feed directions.
const (
	DirectionReceived = "received"
	DirectionSent     = "sent"
)

// FeedEntry is one row of the live request feed.
type FeedEntry struct {
	Direction    string
	Counterpart  string
	OfferedSkill string
	WantedSkill  string
	Status       string
}

// HomePage renders the landing page, greeting the session user by name
// when logged in.
func HomePage(displayName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SkillSwap</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body>
<header><h1>SkillSwap</h1>`); err != nil {
			return err
		}
		if displayName != "" {
			if _, err := fmt.Fprintf(w, `<p>Welcome back, %s.</p>`, templ.EscapeString(displayName)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p>Exchange skills, grow together.</p>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</header>
<main>
<section id="request-feed" data-on-load="@get('/api/requests/feed')"></section>
</main>
</body>
</html>`); err != nil {
			return err
		}
		return nil
	})
}

// RequestFeedFragment renders the viewer's swap requests as list items for
// SSE patching into the #request-feed section.
func RequestFeedFragment(entries []FeedEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(entries) == 0 {
			_, err := io.WriteString(w, `<p>No swap requests yet.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<ul>`); err != nil {
			return err
		}
		for _, e := range entries {
			verb := "from"
			if e.Direction == DirectionSent {
				verb = "to"
			}
			_, err := fmt.Fprintf(w,
				`<li class="request %s">%s %s: %s for %s <span class="status">%s</span></li>`,
				templ.EscapeString(e.Status),
				verb,
				templ.EscapeString(e.Counterpart),
				templ.EscapeString(e.OfferedSkill),
				templ.EscapeString(e.WantedSkill),
				templ.EscapeString(e.Status),
			)
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
		return nil
	})
}
