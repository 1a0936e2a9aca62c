package app

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/drivetrain"
	"github.com/mandelsoft/drivebind/pkg/healthz"
	"github.com/mandelsoft/drivebind/pkg/native/remote"
	"github.com/mandelsoft/drivebind/pkg/server"
)

type Serve struct {
	cmd *cobra.Command

	mainopts *Options
	address  string
	path     string
}

func NewServe(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <options>",
		Short: "serve the object space as remote native runtime",
	}

	c := &Serve{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.address, "address", "a", ":8080", "listen address")
	flags.StringVarP(&c.path, "path", "P", "/native", "websocket path")
	return cmd
}

func (c *Serve) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	space, err := c.mainopts.Local()
	if err != nil {
		return err
	}

	handler := remote.NewHandler(space)
	defer handler.Close()

	healthz.Register("space", space.Check)
	healthz.Register("native", handler.Health)
	defer healthz.Unregister("space")
	defer healthz.Unregister("native")

	srv := server.NewServer(c.address)
	srv.Handle(c.path, handler)
	srv.HandleFunc("/healthz", healthz.Healthz)
	srv.HandleFunc("/metadata", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(drivetrain.Data())
	})

	err = srv.Listen()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "serving %d objects on ws://%s%s\n", len(space.Objects()), srv.Address(), c.path)

	ctx, cancel := signal.NotifyContext(c.cmd.Context(), os.Interrupt)
	defer cancel()
	return srv.ServeContext(ctx, 10*time.Second)
}
