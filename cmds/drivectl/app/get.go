package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/native"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

type Get struct {
	cmd *cobra.Command

	mainopts   *Options
	properties []string
	output     string
}

func NewGet(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get {<object id>} <options>",
		Short: "get objects of the object space (default: root objects)",
	}

	c := &Get{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringSliceVarP(&c.properties, "property", "p", nil, "properties to show (default: all)")
	flags.StringVarP(&c.output, "output", "o", "", "output format (yaml, json)")
	return cmd
}

// ObjectDescription is the printable form of a view.
// Absent properties are shown as null, child objects and
// list elements by their type and identity.
type ObjectDescription struct {
	Id         string         `json:"id"`
	Type       string         `json:"type"`
	Runtime    string         `json:"runtimeType"`
	Properties map[string]any `json:"properties,omitempty"`
}

func (c *Get) Run(args []string) error {
	space, release, err := c.mainopts.Open(c.cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	var handles []native.Handle
	if len(args) == 0 {
		handles, err = space.Roots()
		if err != nil {
			return err
		}
	} else {
		for _, id := range args {
			h, err := space.Lookup(id)
			if err != nil {
				return err
			}
			handles = append(handles, h)
		}
	}

	var list []*ObjectDescription
	for _, h := range handles {
		o, err := c.mainopts.Wrap(h)
		if err != nil {
			return fmt.Errorf("%s: %w", h.Identity(), err)
		}
		d, err := DescribeObject(o, c.properties...)
		if err != nil {
			return fmt.Errorf("%s: %w", h.Identity(), err)
		}
		list = append(list, d)
	}

	if c.output == "" {
		return PrintTable(c.cmd.OutOrStdout(), []string{"ID", "TYPE", "NAME"},
			utils.TransformSlice(list, func(d *ObjectDescription) []string {
				return []string{d.Id, d.Type, fmt.Sprintf("%v", utils.OptionalDefaulted[any]("", d.Properties["Name"]))}
			}))
	}
	return Output(c.cmd.OutOrStdout(), c.output, list, len(args) != 1)
}

func DescribeObject(o binding.Object, props ...string) (*ObjectDescription, error) {
	d := &ObjectDescription{
		Id:         o.Handle().Identity(),
		Type:       o.TypeName(),
		Runtime:    o.Handle().TypeName(),
		Properties: map[string]any{},
	}
	if len(props) == 0 {
		props = o.Type().Properties()
	}
	for _, n := range props {
		v, err := binding.ReadProperty(o, n)
		if err != nil {
			return nil, err
		}
		d.Properties[n] = printable(v)
	}
	return d, nil
}

func printable(v binding.Value) any {
	if !v.Present {
		return nil
	}
	switch v.Shape {
	case binding.SHAPE_OBJECT:
		return ref(v.Object)
	case binding.SHAPE_LIST:
		return utils.TransformSlice(v.List, ref)
	default:
		return v.Scalar
	}
}

func ref(o binding.Object) string {
	if o == nil {
		return "<null>"
	}
	return fmt.Sprintf("%s[%s]", o.TypeName(), o.Handle().Identity())
}
