package main

import (
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

// watchKeyboard requests an orderly shutdown when ESC is pressed,
// replacing the busy-poll key check of the older acquisition scripts.
func watchKeyboard() {
	if err := keyboard.Open(); err != nil {
		fmt.Println("*** WARNING: console mode unavailable:", err.Error(), "***")
		return
	}
	defer keyboard.Close()
	for {
		_, key, err := keyboard.GetKey()
		if err != nil {
			return
		}
		if key == keyboard.KeyEsc {
			globals.RequestShutdown("console stop")
			return
		}
	}
}
