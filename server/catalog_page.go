package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"tight-lines/internal/game"
)

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

// CatalogPage renders the field guide of every species
func CatalogPage(species []game.Species) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Field Guide</title></head><body><h1>Field Guide</h1>`); err != nil {
			return err
		}
		for _, tier := range game.Tiers {
			if err := speciesTable(tier, species).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func speciesTable(tier game.Tier, species []game.Species) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var rows []game.Species
		for _, s := range species {
			if s.Tier == tier {
				rows = append(rows, s)
			}
		}
		if len(rows) == 0 {
			return nil
		}

		if _, err := fmt.Fprintf(w, `<section class="tier-%s"><h2>%s</h2><table><tr><th>Name</th><th>Water</th><th>Points</th><th>Health</th><th>About</th></tr>`,
			templ.EscapeString(string(tier)), templ.EscapeString(string(tier))); err != nil {
			return err
		}
		for _, s := range rows {
			if _, err := fmt.Fprintf(w, `<tr id="%s"><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>`,
				templ.EscapeString(s.Name), templ.EscapeString(s.Title), templ.EscapeString(string(s.Habitat)),
				s.Points, s.Health, templ.EscapeString(s.About)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}
