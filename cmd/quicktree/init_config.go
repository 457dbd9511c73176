package main

import (
	"context"

	"github.com/raphi011/quicktree/internal/config"
	"github.com/raphi011/quicktree/internal/log"
	"github.com/raphi011/quicktree/internal/ui/styles"
)

func (a *app) initConfig(ctx context.Context, force bool) error {
	path := config.Path(config.FromContext(ctx).HomeDir)
	if err := config.Init(path, force); err != nil {
		return err
	}
	log.FromContext(ctx).Printf("%s %s\n", styles.SuccessStyle.Render("Created config file:"), path)
	return nil
}
