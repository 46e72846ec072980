package main

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/tinyircd/tinyircd/internal/config"
	"github.com/tinyircd/tinyircd/pkg/server"
	"github.com/tinyircd/tinyircd/pkg/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ApplyArgs(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if cfg.Server.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.Printf("Launching tinyircd %s ...", version.GetVersion())

	hostname := cfg.Server.Name
	if hostname == "" {
		if hostname, err = os.Hostname(); err != nil {
			log.Fatalf("Failed to determine hostname: %v", err)
		}
	}

	srv := server.New(hostname)

	// listen on the configured interface
	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		log.Fatalf("Listen failed, port possibly in use already: %v", err)
	}
	defer ln.Close()

	log.Printf("Binding to %s, port %s.", cfg.Server.Host, cfg.Server.Port)

	if cfg.Server.WebsocketAddr != "" {
		go func() {
			log.Printf("WebSocket transport listening on %s", cfg.Server.WebsocketAddr)
			if err := http.ListenAndServe(cfg.Server.WebsocketAddr, srv.WebsocketHandler()); err != nil {
				log.Errorf("WebSocket listener failed: %v", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	// run the accept loop until ctrl-c
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				select {
				case <-done:
					return
				default:
					log.Errorf("Failed to accept connection: %v", err)
					continue
				}
			}
			go srv.HandleConn(conn)
		}
	}()

	<-sigChan
	log.Println("Received shutdown signal, starting graceful shutdown...")
	close(done)
	ln.Close()
	srv.Shutdown()
	log.Println("Shutting down server. Bye!")
}
