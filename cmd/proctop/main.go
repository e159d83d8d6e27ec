package main

import (
	"log"
	"os"

	"github.com/srodi/proctop/pkg/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("proctop: ")
	if err := cli.RootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
