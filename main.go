package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/eventbus"
	"folio/internal/mail"
	"folio/internal/ui"
)

func main() {
	var (
		configPath  string
		contentPath string
		watch       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&contentPath, "content", "", "Portfolio TOML file (default: built-in portfolio)")
	flag.BoolVar(&watch, "watch", false, "Reload the portfolio file when it changes")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("folio.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if contentPath == "" {
		contentPath = cfg.ContentPath
	}

	portfolio, err := content.Load(contentPath)
	if err != nil {
		fmt.Printf("Error loading portfolio: %v\n", err)
		os.Exit(1)
	}

	submitter, err := newSubmitter(cfg.Contact)
	if err != nil {
		fmt.Printf("Error configuring contact delivery: %v\n", err)
		os.Exit(1)
	}

	// Interaction events only go to the log
	for _, t := range []eventbus.EventType{
		eventbus.EventSectionRevealed,
		eventbus.EventFilterChanged,
		eventbus.EventProjectOpened,
		eventbus.EventContactSubmitted,
		eventbus.EventContactDelivered,
		eventbus.EventContactFailed,
		eventbus.EventConfigChanged,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}

	uiModel := ui.NewModel(ctx, ui.Options{
		Bus:         bus,
		Config:      cfg,
		Portfolio:   portfolio,
		Submitter:   submitter,
		ContentPath: contentPath,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward events the page reacts to
	for _, t := range []eventbus.EventType{
		eventbus.EventContentReloaded,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	if contentPath != "" && (watch || cfg.UISettings.WatchContent) {
		watcher := content.NewWatcher(bus, contentPath)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Printf("Content watcher stopped: %v", err)
			}
		}()
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	if cfg.UISettings.AutosaveOnExit {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
}

// newSubmitter builds the configured contact delivery backend
func newSubmitter(c config.ContactSettings) (contact.Submitter, error) {
	switch c.Backend {
	case config.BackendHTTP:
		return contact.NewHTTPSubmitter(c.RelayURL, c.Timeout.Std(), c.MaxAttempts), nil
	case config.BackendSMTP:
		password := c.SMTP.Password
		if password == "" {
			password = os.Getenv("FOLIO_SMTP_PASS")
		}
		return contact.MailSubmitter{Mailer: mail.SMTPMailer{
			Host:     c.SMTP.Host,
			Port:     c.SMTP.Port,
			User:     c.SMTP.User,
			Password: password,
			To:       c.SMTP.To,
		}}, nil
	case config.BackendSimulated, "":
		return contact.Simulated{Delay: c.SimulatedDelay.Std()}, nil
	}
	return nil, fmt.Errorf("unknown contact backend %q", c.Backend)
}
