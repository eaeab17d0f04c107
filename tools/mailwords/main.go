package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailwords/tools/mailwords/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
