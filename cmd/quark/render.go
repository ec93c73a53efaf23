package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quark/internal/expr"
	"github.com/alexisbeaulieu97/quark/pkg/component"
	quarkerrors "github.com/alexisbeaulieu97/quark/pkg/errors"
)

type renderJSONExpression struct {
	Expr  string `json:"expr"`
	Slot  string `json:"slot"`
	Class string `json:"class,omitempty"`
	Style string `json:"style,omitempty"`
}

type renderJSONPayload struct {
	Version     string                 `json:"version"`
	Class       string                 `json:"class"`
	Style       string                 `json:"style"`
	Expressions []renderJSONExpression `json:"expressions"`
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "render EXPR...",
		Short: "Render chain expressions to a class and a style attribute",
		Long: `Evaluate one or more chain expressions such as "Margin.S3.FromTop.OnTablet"
and print the class and style attributes they produce on a single component.`,
		Example: `  quark render Display.Flex Margin.S2.FromTop.OnTablet
  quark render "Opacity.V50.AsStyle TextColor.#ff0000" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.newLogger(cmd)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			results, err := expr.Parse(input)
			if err != nil {
				log.Error(err, "expression rejected")
				return newCommandError("render expressions", input, err, expressionSuggestion(err))
			}

			c := &component.Component{}
			for _, r := range results {
				r.Apply(c)
			}
			attrs := c.BuildAttributes()
			log.WithFields(map[string]any{"expressions": len(results), "attributes": attrs.Len()}).Debug("expressions rendered")

			if asJSON {
				return writeRenderJSON(cmd, results, attrs)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "class: %s\n", attrs.String("class"))
			fmt.Fprintf(out, "style: %s\n", attrs.String("style"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

func writeRenderJSON(cmd *cobra.Command, results []expr.Result, attrs *component.Attributes) error {
	payload := renderJSONPayload{
		Version:     "1.0",
		Class:       attrs.String("class"),
		Style:       attrs.String("style"),
		Expressions: make([]renderJSONExpression, len(results)),
	}

	for i, r := range results {
		payload.Expressions[i] = renderJSONExpression{
			Expr:  r.Expr,
			Slot:  r.Slot,
			Class: r.ToClass(),
			Style: r.ToStyle(),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func expressionSuggestion(err error) string {
	var exprErr *quarkerrors.ExpressionError
	if errors.As(err, &exprErr) && exprErr.Index == 0 {
		return "Run 'quark concerns' to list the available concern names."
	}
	return "Run 'quark concerns' to list the value steps each concern accepts."
}
