package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bracketsim/bracketsim/internal/bracketsim/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := bracketsim(); err != nil {
		logrus.Fatal(err)
	}
}

func bracketsim() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
