// Command ecs-stressgen emits the component and system definitions driven by
// cmd/ecs-stress. The output is deterministic for a given flag set, so the
// generated files are checked in and refreshed via go generate.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

type systemSpec struct {
	Index int
	CompA int
	CompB int
	Fixed bool
}

type genData struct {
	ComponentCount int
	Components     []int
	Systems        []systemSpec
}

func main() {
	componentCount := flag.Int("components", 24, "Number of component types to generate.")
	systemCount := flag.Int("systems", 8, "Number of systems to generate.")
	outDir := flag.String("out", ".", "Directory to write the generated files into.")
	flag.Parse()

	if err := run(*componentCount, *systemCount, *outDir); err != nil {
		log.Fatal(err)
	}
}

func run(componentCount, systemCount int, outDir string) error {
	if componentCount < 2 {
		return fmt.Errorf("need at least 2 components, got %d", componentCount)
	}
	if systemCount < 1 {
		return fmt.Errorf("need at least 1 system, got %d", systemCount)
	}

	data := genData{ComponentCount: componentCount}
	for i := 0; i < componentCount; i++ {
		data.Components = append(data.Components, i)
	}
	// Each system reads a disjoint component pair where the count allows it,
	// wrapping when systems outnumber pairs. Every third system is fixed-step
	// so RunFixed stays exercised.
	for i := 0; i < systemCount; i++ {
		data.Systems = append(data.Systems, systemSpec{
			Index: i,
			CompA: (i * 3) % componentCount,
			CompB: (i*3 + 1) % componentCount,
			Fixed: i%3 == 2,
		})
	}

	if err := render(componentsTemplate, data, filepath.Join(outDir, "components_gen.go")); err != nil {
		return err
	}
	return render(systemsTemplate, data, filepath.Join(outDir, "systems_gen.go"))
}

func render(tmplText string, data genData, path string) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(tmplText)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

const componentsTemplate = `// Code generated by ecs-stressgen; DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/cushmily/ecs"
)

const generatedComponentCount = {{.ComponentCount}}
{{range .Components}}
type StressComponent{{.}} struct {
	A, B float32
	Hits int32
}
{{end}}
func addGeneratedComponent(w *ecs.World, e ecs.Entity, idx int, rng *rand.Rand) {
	switch idx {
{{- range .Components}}
	case {{.}}:
		if c, err := ecs.Add[StressComponent{{.}}](w, e); err == nil {
			c.A, c.B = rng.Float32(), rng.Float32()
		}
{{- end}}
	}
}

// SpawnRandomEntity creates an entity carrying n distinct generated
// components chosen by the rng.
func SpawnRandomEntity(w *ecs.World, n int, rng *rand.Rand) ecs.Entity {
	e := w.CreateEntity()
	if n > generatedComponentCount {
		n = generatedComponentCount
	}
	for _, idx := range rng.Perm(generatedComponentCount)[:n] {
		addGeneratedComponent(w, e, idx, rng)
	}
	return e
}
`

const systemsTemplate = `// Code generated by ecs-stressgen; DO NOT EDIT.

package main

import (
	"github.com/cushmily/ecs"
)

const generatedSystemCount = {{len .Systems}}
{{range .Systems}}
type StressSystem{{.Index}} struct {
	Items ecs.Query[struct {
		*StressComponent{{.CompA}}
		*StressComponent{{.CompB}}
	}]
}

func (s *StressSystem{{.Index}}) {{if .Fixed}}RunFixed{{else}}Run{{end}}() {
	for _, it := range s.Items.Iter() {
		it.StressComponent{{.CompA}}.A += it.StressComponent{{.CompB}}.B * 0.5
		it.StressComponent{{.CompA}}.Hits++
	}
}
{{end}}
// RegisterGeneratedSystems adds every generated system to the group in index
// order.
func RegisterGeneratedSystems(g *ecs.SystemGroup) error {
{{- range .Systems}}
	if err := g.Add(&StressSystem{{.Index}}{}); err != nil {
		return err
	}
{{- end}}
	return nil
}
`
