package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quark/internal/preset"
	"github.com/alexisbeaulieu97/quark/pkg/component"
	"github.com/alexisbeaulieu97/quark/pkg/diff"
)

type buildJSONComponent struct {
	ID         string                `json:"id"`
	Tag        string                `json:"tag"`
	Attributes *component.Attributes `json:"attributes"`
}

type buildJSONPayload struct {
	Version    string               `json:"version"`
	Preset     string               `json:"preset"`
	Count      int                  `json:"count"`
	Components []buildJSONComponent `json:"components"`
}

func newBuildCmd(flags *rootFlags) *cobra.Command {
	var (
		file   string
		format string
		check  string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every component declared in a preset file",
		Example: `  quark build -f examples/card.yaml
  quark build -f examples/card.yaml --format html
  quark build -f examples/card.yaml --check examples/card.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.newLogger(cmd)
			if err != nil {
				return err
			}
			if file == "" {
				return newCommandError("build preset", "no preset file", fmt.Errorf("--file is required"), "Pass a preset with -f path/to/preset.yaml.")
			}

			p, err := preset.ParseFile(file)
			if err != nil {
				log.Error(err, "preset load failed")
				return newCommandError("load preset", file, err, "Check the preset syntax and that every style expression is valid.")
			}

			built, err := p.Build(log.With("file", file))
			if err != nil {
				return newCommandError("build preset", file, err, "Run 'quark render' on the failing expression to inspect it.")
			}

			out := cmd.OutOrStdout()
			if check != "" {
				return checkGolden(cmd.Context(), out, check, built)
			}

			switch format {
			case "", "text":
				return writeBuildText(out, built)
			case "json":
				return writeBuildJSON(out, p, built)
			case "html":
				return writeBuildHTML(cmd, built)
			default:
				return newCommandError("build preset", file, fmt.Errorf("unsupported format %q", format), "Use --format text, json or html.")
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the preset YAML file")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|json|html)")
	cmd.Flags().StringVar(&check, "check", "", "Compare the HTML output against a golden file instead of printing it")

	return cmd
}

func writeBuildText(out io.Writer, built []preset.Built) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTAG\tCLASS\tSTYLE")

	for _, b := range built {
		attrs := b.Component.BuildAttributes()
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			b.Entry.ID,
			b.Entry.TagOrDefault(),
			valueOrDash(attrs.String("class")),
			valueOrDash(attrs.String("style")),
		)
	}

	return writer.Flush()
}

func writeBuildJSON(out io.Writer, p *preset.Preset, built []preset.Built) error {
	payload := buildJSONPayload{
		Version:    p.Version,
		Preset:     p.Name,
		Count:      len(built),
		Components: make([]buildJSONComponent, len(built)),
	}

	for i, b := range built {
		payload.Components[i] = buildJSONComponent{
			ID:         b.Entry.ID,
			Tag:        b.Entry.TagOrDefault(),
			Attributes: b.Component.BuildAttributes(),
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func writeBuildHTML(cmd *cobra.Command, built []preset.Built) error {
	return renderHTML(cmd.Context(), cmd.OutOrStdout(), built)
}

func renderHTML(ctx context.Context, out io.Writer, built []preset.Built) error {
	for _, b := range built {
		if err := b.Element().Render(ctx, out); err != nil {
			return newCommandError("render component", b.Entry.ID, err, "Check the component attributes for unsupported values.")
		}
		fmt.Fprintln(out)
	}
	return nil
}

func checkGolden(ctx context.Context, out io.Writer, golden string, built []preset.Built) error {
	expected, err := os.ReadFile(golden)
	if err != nil {
		return newCommandError("read golden file", golden, err, "Create it with 'quark build -f <preset> --format html > "+golden+"'.")
	}

	var rendered bytes.Buffer
	if err := renderHTML(ctx, &rendered, built); err != nil {
		return err
	}

	result := diff.Unified(string(expected), rendered.String(), golden, "rendered")
	if result == "" {
		fmt.Fprintf(out, "%s is up to date (%d components)\n", golden, len(built))
		return nil
	}

	fmt.Fprint(out, result)
	added, removed := diff.Changed(string(expected), rendered.String())
	return newCommandError(
		"check golden file",
		golden,
		fmt.Errorf("rendered output differs: %d lines added, %d removed", added, removed),
		"Regenerate the golden file if the change is intended.",
	)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
