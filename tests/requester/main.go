package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:9000/track/"

var trackCode string

// Нагружает публичный эндпоинт трекинга: в основном валидный
// трек-код, изредка случайный промах
func main() {
	flag.StringVar(&trackCode, "track", "A1B2C3D4", "known track code")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomCode() string {
	chars := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	code := make([]rune, 8)
	for i := range code {
		code[i] = chars[rand.Intn(len(chars))]
	}
	return string(code)
}

func doRequest() {
	code := trackCode
	if rand.Intn(5) == 0 {
		code = randomCode()
	}

	url := baseURL + code
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
