package admin

import (
	"context"

	"catalog/admin/internal/client"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Stats struct {
	Categories int
	Products   int
}

type Home struct {
	categories client.CategoryService
	products   client.ProductService
	log        *logrus.Entry
}

func NewHome(categories client.CategoryService, products client.ProductService, logger *logrus.Logger) *Home {
	return &Home{
		categories: categories,
		products:   products,
		log:        logger.WithField("actions", "home"),
	}
}

// Stats counts both collections concurrently. A failure is logged and both
// counts are reported as zero.
func (h *Home) Stats(ctx context.Context) Stats {
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := h.categories.GetAll(gctx)
		stats.Categories = len(all)
		return err
	})
	g.Go(func() error {
		all, err := h.products.GetAll(gctx)
		stats.Products = len(all)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.WithError(err).Warn("Erro ao carregar estatísticas")
		return Stats{}
	}
	return stats
}
