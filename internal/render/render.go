// Package render turns a normalized plan into HTML table fragments for the
// frontend. All free-text fields pass through html/template's contextual
// escaping, so model-supplied text cannot inject markup.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/claude/coachplan/internal/plan"
)

var workoutTmpl = template.Must(template.New("workout").Parse(`<table class="plan-table">
  <thead>
    <tr><th>Day</th><th>Focus</th><th>Exercises (sets &times; reps / time)</th></tr>
  </thead>
  <tbody>
{{- range .WorkoutPlan}}
    <tr>
      <td class="day">{{.Day}}</td>
      <td class="focus">{{.Focus}}</td>
      <td><ul class="ex-list">
{{- range .Exercises}}<li>{{.Name}}: {{.Sets}} &times; {{.Reps}}{{if .RestSec}} &mdash; rest {{.RestSec}}s{{end}}</li>{{end -}}
      </ul></td>
    </tr>
{{- end}}
  </tbody>
</table>`))

var dietTmpl = template.Must(template.New("diet").Parse(`<table class="plan-table">
  <thead>
    <tr><th>Day</th><th>Meals</th></tr>
  </thead>
  <tbody>
{{- range .DietPlan}}
    <tr>
      <td class="day">{{.Day}}</td>
      <td><ul class="meal-list">
{{- range .Meals}}<li>{{.Name}}{{if .Notes}} &mdash; {{.Notes}}{{end}}</li>{{end -}}
      </ul></td>
    </tr>
{{- end}}
  </tbody>
</table>`))

// Tables renders the workout and diet fragments for a plan.
func Tables(p *plan.Plan) (workoutHTML, dietHTML string, err error) {
	var w, d strings.Builder
	if err := workoutTmpl.Execute(&w, p); err != nil {
		return "", "", fmt.Errorf("render workout table: %w", err)
	}
	if err := dietTmpl.Execute(&d, p); err != nil {
		return "", "", fmt.Errorf("render diet table: %w", err)
	}
	return w.String(), d.String(), nil
}
