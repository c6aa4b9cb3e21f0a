// Command test-chat is a manual smoke client for the chat channel: it
// connects to a running server, sends one question, and prints every reply
// for a few seconds.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

func main() {
	url := os.Getenv("CHAT_URL")
	if url == "" {
		url = "ws://localhost:3000/ws"
	}

	question := "Do you serve Springfield?"
	if len(os.Args) > 1 {
		question = os.Args[1]
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", url, err)
	}
	defer conn.Close()

	payload, err := sonic.Marshal(map[string]string{"question": question})
	if err != nil {
		log.Fatalf("Failed to encode question: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Fatalf("Failed to send question: %v", err)
	}

	log.Printf("Sent: %s", question)
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(deadline)
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		fmt.Printf("<- %s\n", data)
	}
}
