package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/enum/mode"
	"github.com/dzr01145/chatbot/mode/conv"
	"github.com/dzr01145/chatbot/mode/rt"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		log.Printf("No mode specified.\n%s", mode.Help())
		return
	}
	m := args[0]
	if m == "-v" {
		fmt.Println(config.VERSION)
		return
	}
	if m == "-h" || m == "--help" {
		fmt.Print(mode.Help())
		return
	}

	switch m {
	case mode.RT.Val():
		rt.MainOfRT()
	case mode.CONV.Val():
		conv.MainOfConv()
	default:
		log.Printf("Unknown mode (%s).\n%s", m, mode.Help())
	}
}
