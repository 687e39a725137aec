package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api/v1"

// ORDER_ID and TOKEN point the requester at an existing order so the
// order cache gets hit; public catalog endpoints need neither.
var (
	orderID = os.Getenv("ORDER_ID")
	token   = os.Getenv("TOKEN")
)

var publicPaths = []string{
	"/products",
	"/products/get/featured/5",
	"/categories",
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomUUID() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 32)
	for i := range b {
		b[i] = hex[rand.Intn(len(hex))]
	}
	return fmt.Sprintf("%s-%s-4%s-a%s-%s", b[0:8], b[8:12], b[13:16], b[17:20], b[20:32])
}

func doRequest() {
	path := publicPaths[rand.Intn(len(publicPaths))]
	if orderID != "" && token != "" && rand.Intn(2) == 0 {
		id := orderID
		if rand.Intn(5) == 0 {
			id = randomUUID()
		}
		path = "/orders/" + id
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", path, "->", resp.Status)
		resp.Body.Close()
	}
}
