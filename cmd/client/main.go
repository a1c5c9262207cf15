// cmd/client/main.go is an interactive line client for the wordle server.
// A background receive goroutine prints every server message as soon as it
// arrives, so broadcasts never sit queued behind the prompt.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
)

var printMu sync.Mutex

func printSafe(lines ...string) {
	printMu.Lock()
	defer printMu.Unlock()
	for _, l := range lines {
		fmt.Println(l)
	}
}

func main() {
	host := flag.String("host", "127.0.0.1", "server host")
	port := flag.String("port", "5050", "server port")
	name := flag.String("name", "anon", "player name used in the printed examples")
	flag.Parse()

	addr := net.JoinHostPort(*host, *port)
	printSafe("connecting to " + addr + " ...")
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()
	printSafe("connected")

	go recvLoop(conn)

	printSafe(
		"examples:",
		`  {"action":"create_multi"}`,
		fmt.Sprintf(`  {"action":"join","game_id":"1234","player":%q}`, *name),
		fmt.Sprintf(`  {"action":"guess","game_id":"1234","player":%q,"word":"apple"}`, *name),
		"Ctrl+C / Ctrl+D to exit.",
	)

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(conn)
	for {
		fmt.Print(">> ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if _, err := out.WriteString(line + "\n"); err != nil {
			printSafe("send failed: " + err.Error())
			break
		}
		if err := out.Flush(); err != nil {
			printSafe("send failed: " + err.Error())
			break
		}
	}
	printSafe("connection closed")
}

// recvLoop reads server lines and classifies them for display.
func recvLoop(conn net.Conn) {
	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			printSafe("non-JSON message: " + line)
			continue
		}
		switch {
		case obj["event"] != nil:
			printSafe(fmt.Sprintf("\n[event %v] %s", obj["event"], pretty(obj)))
		case obj["ok"] == true:
			printSafe("\n[ok] " + pretty(obj))
		case obj["ok"] == false:
			printSafe("\n[error] " + pretty(obj))
		default:
			printSafe("\n[unknown] " + pretty(obj))
		}
	}
	printSafe("server closed the connection")
	os.Exit(0)
}

func pretty(obj map[string]any) string {
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Sprint(obj)
	}
	return string(b)
}
