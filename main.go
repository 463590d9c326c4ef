package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"SketchBoard/internal/config"
	"SketchBoard/internal/net"
	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"
)

const (
	discoverTimeout = 3 * time.Second
	dialTimeout     = 5 * time.Second
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", config.DefaultPath(), "path to the TOML config file")
	discover := flag.Bool("discover", false, "join the first host found on the local network")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: sketchboard [-config path] [-discover] [%shost:port]\n", net.Scheme)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a := ui.NewApp()
	board, err := ui.NewBoard(cfg)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	link := flag.Arg(0)
	switch {
	case strings.HasPrefix(link, net.Scheme):
		addr, ok := net.ParseLink(link)
		if !ok {
			log.Fatalf("Malformed link %q", link)
		}
		runClient(a, board, func() (string, error) { return addr, nil })
	case *discover:
		runClient(a, board, func() (string, error) {
			board.SetStatus("Looking for a host...")
			return net.DiscoverHost(cfg.ServiceName, discoverTimeout)
		})
	default:
		runHost(a, board, cfg)
	}
}

func runHost(a fyne.App, board *ui.Board, cfg config.Config) {
	log.Println("Starting as HOST")
	hub := net.NewHub()
	srv, err := net.Listen(hub, cfg.Port)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[HOST] Shutdown: %v", err)
		}
	}()

	hub.OnMessage = func(m net.Message) {
		board.ApplyRemote(*m.Op)
	}
	board.Surface.OnOp = func(op state.Op) {
		if err := hub.Send(net.OpMessage(op)); err != nil {
			log.Printf("[HOST] Failed to broadcast %s: %v", op.Type, err)
		}
	}

	go func() {
		if err := srv.Serve(); err != nil {
			log.Printf("[HOST] Server stopped: %v", err)
		}
	}()
	log.Printf("[HOST] Listening on port %d", srv.Port())

	mdnsServer, err := net.Advertise(cfg.ServiceName, srv.Port())
	if err != nil {
		log.Printf("[HOST] mDNS disabled: %v", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	ui.RunApp(a, board, net.ShareLink(net.OutgoingIP(), srv.Port()))
}

func runClient(a fyne.App, board *ui.Board, resolve func() (string, error)) {
	log.Println("Starting as CLIENT")
	done := make(chan struct{})
	go connectToHost(board, resolve, done)
	ui.RunApp(a, board, "")
	close(done)
}

func connectToHost(board *ui.Board, resolve func() (string, error), done <-chan struct{}) {
	addr, err := resolve()
	if err != nil {
		board.SetStatus(fmt.Sprintf("No host: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	client, err := net.Dial(ctx, addr)
	cancel()
	if err != nil {
		board.SetStatus(fmt.Sprintf("Connection failed: %v", err))
		return
	}
	go func() {
		<-done
		client.Close()
	}()

	local := client.LocalAddr()
	log.Println("Client connected successfully as", local)
	board.SetStatus("Connected to host as " + local)

	// Local ops are only forwarded once connected; OnOp runs on the UI
	// goroutine, so it is installed there too.
	fyne.Do(func() {
		board.Surface.OnOp = func(op state.Op) {
			if err := client.Send(net.OpMessage(op)); err != nil {
				log.Printf("Failed to send %s: %v", op.Type, err)
			}
		}
	})

	err = client.Listen(func(m net.Message) {
		board.ApplyRemote(*m.Op)
	})
	select {
	case <-done:
		return
	default:
	}
	board.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
	fyne.Do(func() {
		board.Surface.OnOp = nil
	})
}
