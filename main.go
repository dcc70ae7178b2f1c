package main

import (
	"embed"
	"fmt"

	"github.com/audioskills/skillboard/bootstrap"
	"github.com/audioskills/skillboard/config"
)

//go:embed templates
var templates embed.FS

func main() {
	r := bootstrap.Bootstrap(templates)
	port := config.GetPort()
	r.Run(fmt.Sprintf(":%d", port))
}
