package cmd

import (
	"context"
	"log"
	"time"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/automoto/sparkle-cursor/store"
)

// saveAndNotify stores s and tells a running overlay about it. Settings are
// kept even when no overlay is listening.
func saveAndNotify(st *store.Store, port uint, s settings.Settings, msg messages.Message) error {
	if err := st.Set(s); err != nil {
		return err
	}

	if err := notifyOverlay(port, msg); err != nil {
		log.Printf("Settings saved; overlay not notified: %v", err)
	}
	return nil
}

func notifyOverlay(port uint, msg messages.Message) error {
	sender := network.NewSender()
	defer sender.Close()

	sender.Connect(overlayAddress(port))

	wait := time.Duration(cfg.Net.ConnectWait * float64(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	if err := sender.WaitConnected(ctx); err != nil {
		return err
	}
	return sender.Send(msg)
}
