package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/ctxutil"
	"github.com/mandelsoft/drivebind/pkg/drivetrain"
	"github.com/mandelsoft/drivebind/pkg/drivetrain/analyses"
	"github.com/mandelsoft/drivebind/pkg/drivetrain/design"
	"github.com/mandelsoft/drivebind/pkg/metadata"
	"github.com/mandelsoft/drivebind/pkg/native"
	"github.com/mandelsoft/drivebind/pkg/native/memory"
	"github.com/mandelsoft/drivebind/pkg/native/remote"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

type Options struct {
	space  string
	server string
	level  string

	timeout time.Duration

	fs         vfs.FileSystem
	model      *metadata.Model
	registries []*binding.Registry
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:         utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		model:      drivetrain.MustMetadata(),
		registries: []*binding.Registry{design.Registry, analyses.Registry},
	}

	cfg := GetConfig(opts.fs)
	opts.space = value(cfg.Space)
	opts.server = value(cfg.Server)
	opts.level = value(cfg.LogLevel)

	maincmd := &cobra.Command{
		Use:   "drivectl <options> <cmd> <args>",
		Short: "inspect drivetrain object spaces",
		Long: `
This command can be used to inspect the objects of a native drivetrain
object space through the generated wrapper types. The space is either
read from a local file or accessed via a remote native runtime.
`,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetupLogging(opts.level)
		},
	}

	flags := maincmd.Flags()
	flags.StringVarP(&opts.space, "space", "f", opts.space, "object space file")
	flags.StringVarP(&opts.server, "server", "s", opts.server, "remote native runtime (ws://<host>:<port>/native)")
	flags.StringVarP(&opts.level, "log-level", "L", opts.level, "log level")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for connecting a remote native runtime")

	maincmd.AddCommand(NewTypes(opts))
	maincmd.AddCommand(NewGet(opts))
	maincmd.AddCommand(NewCast(opts))
	maincmd.AddCommand(NewServe(opts))
	maincmd.AddCommand(NewFake(opts))
	return maincmd
}

// Open provides access to the configured object space. The returned
// function releases the access.
func (o *Options) Open(ctx context.Context) (native.Space, func() error, error) {
	if o.server != "" {
		dctx := ctxutil.TimeoutContext(ctx, o.timeout)
		c, err := remote.Dial(dctx, o.server)
		ctxutil.Cancel(dctx)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	}
	s, err := o.Local()
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return nil }, nil
}

// Local loads the configured object space file.
func (o *Options) Local() (*memory.Space, error) {
	if o.space == "" {
		return nil, fmt.Errorf("no object space specified (use --space or --server)")
	}
	return memory.Load(o.space, o.model, o.fs)
}

// Registry returns the registry providing a wrapper type.
func (o *Options) Registry(typ string) *binding.Registry {
	for _, r := range o.registries {
		if r.HasType(typ) {
			return r
		}
	}
	return nil
}

// Wrap creates a view of the most specific wrapper type known
// for the runtime type of a handle.
func (o *Options) Wrap(h native.Handle) (binding.Object, error) {
	names := []string{h.TypeName()}
	if l, ok := h.(native.Lineage); ok {
		lineage, err := l.TypeLineage()
		if err != nil {
			return nil, err
		}
		names = append(names, lineage...)
	}
	for _, n := range names {
		if r := o.Registry(n); r != nil {
			return binding.Wrap(r, n, h)
		}
	}
	return nil, &binding.UnknownTypeError{Registry: "drivectl", Type: h.TypeName()}
}
