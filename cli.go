//go:build cli

package main

import (
	_ "github.com/Eboreg/klaatu-go/api/admin"
	_ "github.com/Eboreg/klaatu-go/api/media"
	_ "github.com/Eboreg/klaatu-go/custom"
	_ "github.com/Eboreg/klaatu-go/html"

	"github.com/Eboreg/klaatu-go/cmd"
	"github.com/Eboreg/klaatu-go/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
