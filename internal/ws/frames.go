package ws

import (
	"encoding/json"
	"log"

	"portfolio/internal/scene"
)

// FramePublisher streams scene frames to every hub subscriber as JSON.
type FramePublisher struct {
	hub    *Hub
	logger *log.Logger
}

func NewFramePublisher(hub *Hub, logger *log.Logger) *FramePublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &FramePublisher{hub: hub, logger: logger}
}

func (p *FramePublisher) Publish(f scene.Frame) {
	if p.hub.ClientCount() == 0 {
		return
	}
	b, err := json.Marshal(f)
	if err != nil {
		p.logger.Printf("[WS] frame encode failed seq=%d error=%v", f.Seq, err)
		return
	}
	p.hub.Broadcast(b)
}
