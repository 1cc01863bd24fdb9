package main

import (
	"github.com/vango-dev/tips/app/components/tips"
	"github.com/vango-dev/tips/internal/config"
	"github.com/vango-dev/tips/internal/site"
)

func buildSite(cfg *config.Config) (*site.Site, error) {
	return site.Build(tips.Styles, tips.Tips, site.Options{
		Title:        cfg.Render.Title,
		Lang:         cfg.Render.Lang,
		Pretty:       cfg.Render.Pretty,
		StaticPrefix: cfg.Static.Prefix,
	})
}
