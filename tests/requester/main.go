package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "order service url")
	userID := flag.String("user", "", "buyer id sent in X-User-ID")
	orderID := flag.String("order", "", "order id requested most of the time")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, *userID, *orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomPath(orderID string) string {
	switch rand.Intn(5) {
	case 0:
		return "/orders?page_size=10"
	case 1:
		return "/orders?status=pending_approval&sort=total&order=desc"
	case 2:
		return "/orders/00000000-0000-0000-0000-000000000000"
	default:
		return "/orders/" + orderID
	}
}

func doRequest(baseURL, userID, orderID string) {
	url := baseURL + randomPath(orderID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("X-User-ID", userID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
