package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
)

const baseURL = "http://localhost:9000"

var brands = []string{"Apple", "Samsung", "Xiaomi", "Huawei", "Google", "OnePlus", "Sony", "Nokia"}

var models = map[string][]string{
	"Apple":   {"iPhone 12", "iPhone 13", "iPhone 14 Pro", "iPhone SE"},
	"Samsung": {"Galaxy S21", "Galaxy S23", "Galaxy A54", "Galaxy Note 20"},
	"Xiaomi":  {"Redmi Note 12", "Mi 11", "Poco X5"},
	"Huawei":  {"P40", "Mate 50"},
	"Google":  {"Pixel 7", "Pixel 8 Pro"},
	"OnePlus": {"11", "Nord 3"},
	"Sony":    {"Xperia 5", "Xperia 1"},
	"Nokia":   {"G42", "X30"},
}

var conditions = []string{"Good", "Fair", "Damaged", "Not Working"}

var problems = []string{
	"cracked screen",
	"battery drains fast",
	"does not charge",
	"water damage",
	"speaker not working",
	"camera out of focus",
	"random reboots",
}

var names = []string{"Ivan Petrov", "Anna Sokolova", "Pavel Smirnov", "Olga Ivanova", "Dmitry Kuznetsov"}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type orderRequest struct {
	CustomerName       string  `json:"customer_name"`
	PhoneNumber        string  `json:"phone_number"`
	DeviceBrand        string  `json:"device_brand"`
	DeviceModel        string  `json:"device_model"`
	IMEI               string  `json:"imei,omitempty"`
	ProblemDescription string  `json:"problem_description"`
	DeviceCondition    string  `json:"device_condition"`
	EstimatedCost      float64 `json:"estimated_cost"`
}

type orderResponse struct {
	ID        string `json:"order_id"`
	TrackCode string `json:"track_code"`
}

// Наполняет сервис случайными заказами через HTTP API
func main() {
	count := flag.Int("count", 20, "orders to create")
	flag.Parse()

	token := authorize()

	for range *count {
		order := randomOrder()
		created, err := createOrder(token, order)
		if err != nil {
			log.Fatalf("failed to create order: %v", err)
		}
		fmt.Printf("created %s track=%s %s %s\n", created.ID, created.TrackCode, order.DeviceBrand, order.DeviceModel)
	}
}

func authorize() string {
	creds := credentials{Email: "seed@example.com", Password: "seed-password", FullName: "Seed Master"}

	body, _ := json.Marshal(creds)
	resp, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("failed to register: %v", err)
	}
	resp.Body.Close()

	body, _ = json.Marshal(credentials{Email: creds.Email, Password: creds.Password})
	resp, err = http.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("login returned %s", resp.Status)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		log.Fatalf("failed to decode login response: %v", err)
	}
	return login.Token
}

func createOrder(token string, order orderRequest) (orderResponse, error) {
	body, _ := json.Marshal(order)
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return orderResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return orderResponse{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var created orderResponse
	return created, json.NewDecoder(resp.Body).Decode(&created)
}

func randomOrder() orderRequest {
	brand := brands[rand.Intn(len(brands))]
	model := models[brand][rand.Intn(len(models[brand]))]

	order := orderRequest{
		CustomerName:       names[rand.Intn(len(names))],
		PhoneNumber:        fmt.Sprintf("+7999%07d", rand.Intn(10000000)),
		DeviceBrand:        brand,
		DeviceModel:        model,
		ProblemDescription: problems[rand.Intn(len(problems))],
		DeviceCondition:    conditions[rand.Intn(len(conditions))],
		EstimatedCost:      float64(rand.Intn(500)) + 50,
	}
	if rand.Intn(2) == 0 {
		order.IMEI = fmt.Sprintf("%015d", rand.Int63n(1e15))
	}
	return order
}
