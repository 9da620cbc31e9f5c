package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spattnaik1998/Augmenting-Wolfram/client"
)

func main() {
	baseURL := os.Getenv("CHATBOT_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	api := client.NewApiClient(baseURL)
	session := client.NewSession(api)

	fmt.Println("Welcome to the Wolfram Alpha Chatbot CLI")
	if !session.Connected() {
		fmt.Printf("Backend is not reachable at %s\n", baseURL)
		os.Exit(1)
	}

	if examples, err := api.FetchExamples(); err == nil {
		fmt.Println("\nTry asking:")
		for i, query := range examples.WolframExamples {
			if i >= 3 {
				break
			}
			fmt.Println("  - " + query)
		}
		for i, query := range examples.GeneralExamples {
			if i >= 2 {
				break
			}
			fmt.Println("  - " + query)
		}
	}

	fmt.Println("\nType 'exit' to quit.")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("You: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "exit" {
			fmt.Println("Goodbye!")
			return
		}

		if !session.Submit(line) {
			continue
		}

		messages := session.Messages()
		last := messages[len(messages)-1]
		switch {
		case last.IsError:
			fmt.Printf("Error: %s\n", last.Content)
		case last.UsedWolfram:
			fmt.Printf("Bot [wolfram, %.2fs]: %s\n", last.ProcessingTime, last.Content)
		default:
			fmt.Printf("Bot [%.2fs]: %s\n", last.ProcessingTime, last.Content)
		}
	}
}
