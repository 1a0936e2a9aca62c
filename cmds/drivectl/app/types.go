package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

type Types struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewTypes(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types {<type>} <options>",
		Short: "show wrapper types and their cast tables",
	}

	c := &Types{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output format (yaml, json)")
	return cmd
}

type PropertyDescription struct {
	Name       string `json:"name"`
	Field      string `json:"field"`
	Shape      string `json:"shape"`
	Type       string `json:"type"`
	DeclaredBy string `json:"declaredBy"`
}

type TypeDescription struct {
	Name        string                `json:"name"`
	Namespace   string                `json:"namespace,omitempty"`
	Package     string                `json:"package"`
	Ancestors   []string              `json:"ancestors,omitempty"`
	Descendants []string              `json:"descendants,omitempty"`
	Properties  []PropertyDescription `json:"properties,omitempty"`
}

func Describe(t *binding.TypeInfo) *TypeDescription {
	d := &TypeDescription{
		Name:        t.Name(),
		Namespace:   t.Namespace(),
		Package:     t.Registry().Name(),
		Ancestors:   t.Ancestors(),
		Descendants: t.Descendants(),
	}
	for _, n := range t.Properties() {
		p := t.Property(n)
		d.Properties = append(d.Properties, PropertyDescription{
			Name:       p.Name,
			Field:      p.Field,
			Shape:      string(p.Shape),
			Type:       p.Type,
			DeclaredBy: p.DeclaredBy().Name(),
		})
	}
	return d
}

func (c *Types) Run(args []string) error {
	var list []*binding.TypeInfo

	if len(args) == 0 {
		for _, r := range c.mainopts.registries {
			for _, n := range r.TypeNames() {
				list = append(list, r.Type(n))
			}
		}
	} else {
		for _, n := range args {
			r := c.mainopts.Registry(n)
			if r == nil {
				return fmt.Errorf("unknown type %q", n)
			}
			list = append(list, r.Type(n))
		}
	}

	if c.output == "" {
		if len(args) == 0 {
			return PrintTable(c.cmd.OutOrStdout(), []string{"PACKAGE", "NAME", "NAMESPACE", "CASTS"},
				utils.TransformSlice(list, func(t *binding.TypeInfo) []string {
					return []string{t.Registry().Name(), t.Name(), t.Namespace(), fmt.Sprintf("%d", len(t.CastTargets()))}
				}))
		}
		for _, t := range list {
			printCastTable(c.cmd.OutOrStdout(), t)
		}
		return nil
	}
	return Output(c.cmd.OutOrStdout(), c.output, utils.TransformSlice(list, Describe), len(args) != 1)
}

func printCastTable(w io.Writer, t *binding.TypeInfo) {
	fmt.Fprintf(w, "%s (%s)\n", t.Name(), t.QualifiedName())
	fmt.Fprintf(w, "  ancestors:   %s\n", strings.Join(t.Ancestors(), ", "))
	fmt.Fprintf(w, "  descendants: %s\n", strings.Join(t.Descendants(), ", "))
	fmt.Fprintf(w, "  properties:  %s\n", strings.Join(t.Properties(), ", "))
}
