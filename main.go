/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/certproof-io/btc-anchor-connector/cmd"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // auto load .env
	cmd.Execute()
}
