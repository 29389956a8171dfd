package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Параллельно дёргает fulfill для одного заказа: ожидается ровно один 200,
// остальные ответы - 409.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service url")
	orderID := flag.String("order", "", "order id")
	callers := flag.Int("n", 10, "concurrent callers")
	flag.Parse()

	if *orderID == "" {
		fmt.Println("pass -order")
		return
	}

	url := strings.TrimRight(*baseURL, "/") + "/admin/orders/" + *orderID + "/fulfill"

	var (
		mu    sync.Mutex
		codes = make(map[int]int)
		wg    sync.WaitGroup
	)
	start := time.Now()
	for range *callers {
		wg.Go(func() {
			code := doRequest(url)
			mu.Lock()
			codes[code]++
			mu.Unlock()
		})
	}
	wg.Wait()

	fmt.Println("POST", url, "in", time.Since(start))
	for code, n := range codes {
		fmt.Printf("  %d: %d\n", code, n)
	}
}

func doRequest(url string) int {
	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}
