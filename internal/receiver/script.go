package receiver

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"text/template"

	"ignite/internal/errors"
)

//go:embed sw.js.tmpl
var scriptSource string

var scriptTemplate = template.Must(template.New("sw.js").Parse(scriptSource))

type scriptData struct {
	Defaults string
}

// Script renders the browser service worker with the given appearance baked in.
// The worker runs the same decisions as Handler.
func Script(a Appearance) ([]byte, error) {
	defaults, err := json.Marshal(map[string]any{
		"title":   a.Title,
		"body":    a.Body,
		"url":     a.URL,
		"icon":    a.Icon,
		"badge":   a.Badge,
		"tag":     a.Tag,
		"vibrate": a.Vibrate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal worker defaults")
	}

	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, scriptData{Defaults: string(defaults)}); err != nil {
		return nil, errors.Wrap(err, "render service worker")
	}

	return buf.Bytes(), nil
}
