package main

import (
	"github.com/sirupsen/logrus"

	uno "github.com/SebastianHojer/functional-uno"
	"github.com/SebastianHojer/functional-uno/server"
)

func main() {
	log := logrus.New()

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.WithError(err).Fatal("could not read config")
	}

	s := server.NewServer(uno.NewInMemoryGameStore(), cfg, log)

	log.WithField("addr", cfg.Addr).Info("listening")
	log.Fatal(s.ListenAndServe())
}
