package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"seismicsim/config"
	"seismicsim/scenario"
	"seismicsim/seismic"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// simState is the server's shared clock and engine. The engine itself is a
// pure evaluator; the only mutable pieces are the clock, the speed and the
// current scenario, guarded by one mutex.
type simState struct {
	mu        sync.Mutex
	engine    *seismic.Engine
	scenario  scenario.Scenario
	elapsed   float64
	timeScale float64
}

func newSimState(sc scenario.Scenario) *simState {
	return &simState{
		engine:    seismic.NewEngine(sc.Building, sc.Seismic),
		scenario:  sc,
		timeScale: 1.0,
	}
}

func (s *simState) advance(dt float64) {
	s.mu.Lock()
	s.elapsed += dt * s.timeScale
	if s.elapsed < 0 {
		s.elapsed = 0
	}
	s.mu.Unlock()
}

func (s *simState) frame(ground config.Ground) FrameData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildFrame(s.engine, ground, s.elapsed, s.timeScale)
}

// controlMessage is what clients send back over the socket.
type controlMessage struct {
	TimeScale *float64 `json:"timeScale,omitempty"`
	Scrub     *float64 `json:"scrub,omitempty"`
	Magnitude *float64 `json:"magnitude,omitempty"`
	Reset     bool     `json:"reset,omitempty"`
}

func (s *simState) apply(msg controlMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.TimeScale != nil {
		fmt.Printf("SPEED CHANGE: %.2fx -> %.2fx\n", s.timeScale, *msg.TimeScale)
		s.timeScale = *msg.TimeScale
	}
	if msg.Scrub != nil {
		// Scrubbing backwards is just re-evaluation at the new clock; the
		// engine has no tick history to unwind.
		s.elapsed = *msg.Scrub
		if s.elapsed < 0 {
			s.elapsed = 0
		}
	}
	if msg.Magnitude != nil {
		fmt.Printf("MAGNITUDE CHANGE: %.1f -> %.1f\n", s.scenario.Seismic.Magnitude, *msg.Magnitude)
		s.scenario.Seismic.Magnitude = *msg.Magnitude
		s.engine = seismic.NewEngine(s.scenario.Building, s.scenario.Seismic)
	}
	if msg.Reset {
		s.elapsed = 0
	}
}

type frameServer struct {
	settings config.Settings
	sim      *simState

	clients      map[*websocket.Conn]*sync.Mutex
	clientsMutex sync.RWMutex
}

func startServer(settings config.Settings, sc scenario.Scenario) error {
	srv := &frameServer{
		settings: settings,
		sim:      newSimState(sc),
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}

	fmt.Printf("Scenario %q: %d floors %s, magnitude %.1f at (%.0f, %.0f)\n",
		sc.Name, sc.Building.FloorCount, sc.Building.Material,
		sc.Seismic.Magnitude, sc.Seismic.Epicenter.X, sc.Seismic.Epicenter.Z)

	go srv.simulationLoop()

	http.HandleFunc("/ws", srv.handleWebSocket)

	addr := fmt.Sprintf(":%d", settings.Server.Port)
	fmt.Printf("Server starting on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, nil)
}

func (srv *frameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	srv.clientsMutex.Lock()
	srv.clients[conn] = connMutex
	srv.clientsMutex.Unlock()
	defer func() {
		srv.clientsMutex.Lock()
		delete(srv.clients, conn)
		srv.clientsMutex.Unlock()
	}()

	// Send the current frame immediately so new clients do not wait out the
	// broadcast interval.
	frame := srv.sim.frame(srv.settings.Ground)
	connMutex.Lock()
	conn.WriteJSON(frame)
	connMutex.Unlock()

	for {
		var msg controlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("WebSocket read error:", err)
			break
		}
		srv.sim.apply(msg)
	}
}

func (srv *frameServer) simulationLoop() {
	base := time.Duration(srv.settings.Server.UpdateIntervalMs) * time.Millisecond
	pacer := NewBroadcastPacer(base)

	last := time.Now()
	lastPrint := time.Now()
	for {
		now := time.Now()
		srv.sim.advance(now.Sub(last).Seconds())
		last = now

		frame := srv.sim.frame(srv.settings.Ground)
		srv.broadcast(frame)

		if time.Since(lastPrint) > time.Second {
			lastPrint = time.Now()
			fmt.Printf("TIMING: t=%.1fs, peak ground %.4f, interval=%v, collapsed=%v\n",
				frame.Time, pacer.LastPeakMotion, pacer.CurrentInterval, frame.Collapsed)
		}

		time.Sleep(pacer.NextInterval(frame))
	}
}

func (srv *frameServer) broadcast(frame FrameData) {
	srv.clientsMutex.RLock()
	var clientsToRemove []*websocket.Conn
	for client, mutex := range srv.clients {
		mutex.Lock()
		err := client.WriteJSON(frame)
		mutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			client.Close()
			clientsToRemove = append(clientsToRemove, client)
		}
	}
	srv.clientsMutex.RUnlock()

	if len(clientsToRemove) > 0 {
		srv.clientsMutex.Lock()
		for _, client := range clientsToRemove {
			delete(srv.clients, client)
		}
		srv.clientsMutex.Unlock()
	}
}
