package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"homeserve/internal/database"
	"homeserve/internal/domain"
)

func main() {
	db, err := database.Connect("homeserve.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_work_items")
	db.Exec("DELETE FROM replies")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM work_items")
	db.Exec("DELETE FROM service_images")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM popular_businesses")
	db.Exec("DELETE FROM business_categories")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM password_reset_tokens")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := make([]domain.User, 0, 3)
	names := [][2]string{{"Aruzhan", "Seitkali"}, {"Bekzat", "Omarov"}, {"Dina", "Akhmetova"}}
	for i, n := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("Client123!"), bcrypt.DefaultCost)
		u := domain.User{
			FirstName:    n[0],
			LastName:     n[1],
			Username:     fmt.Sprintf("user%d", i+1),
			Contact:      fmt.Sprintf("+7 777 123 45%02d", i+10),
			Address:      fmt.Sprintf("Abay Ave %d, Almaty", i+1),
			Gender:       domain.GenderFemale,
			Email:        fmt.Sprintf("user%d@homeserve.kz", i+1),
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if i == 1 {
			u.Gender = domain.GenderMale
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / Client123!", u.Email)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	type seedEntry struct {
		category domain.ServiceCategory
		title    string
		items    []domain.WorkItem
	}
	entries := []seedEntry{
		{domain.CategoryCleaning, "Apartment Deep Cleaning", []domain.WorkItem{
			{Name: "Kitchen cleaning", Price: 100},
			{Name: "Bathroom cleaning", Price: 50},
			{Name: "Window washing", Price: 75.50},
		}},
		{domain.CategoryPlumbing, "Pipe and Faucet Repair", []domain.WorkItem{
			{Name: "Faucet replacement", Price: 120},
			{Name: "Leak repair", Price: 200},
		}},
		{domain.CategoryPainting, "Interior Wall Painting", []domain.WorkItem{
			{Name: "Single room", Price: 300},
			{Name: "Ceiling", Price: 150},
		}},
	}

	services := make([]domain.Service, 0, len(entries))
	for i, e := range entries {
		svc := domain.Service{
			Category:    e.category,
			Title:       e.title,
			Description: "Experienced crew, materials included.",
			Location:    "Almaty",
			WorkItems:   e.items,
		}
		db.Create(&svc)
		services = append(services, svc)
		log.Printf("Service %d created: %s (%d work specifications)", i+1, svc.Title, len(e.items))
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	cleaning := services[0]
	booking := domain.Booking{
		UserID:    users[0].ID,
		ServiceID: &cleaning.ID,
		Price:     150,
		Date:      "2026-09-15",
		Time:      "10:00",
		Address:   "Dostyk Ave 97, Almaty",
		Editable:  true,
		Status:    domain.BookingScheduled,
		WorkItems: cleaning.WorkItems[:2],
	}
	db.Create(&booking)

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	review := domain.Review{
		UserID:      users[1].ID,
		ServiceID:   cleaning.ID,
		Rating:      5,
		RatingLabel: "Excellent",
		Comment:     "Spotless result, arrived on time.",
	}
	db.Create(&review)
	db.Create(&domain.Reply{
		UserID:   users[0].ID,
		ReviewID: review.ID,
		Comment:  "Agreed, booking them again next month.",
	})

	// ================== BUSINESSES ==================
	log.Println("Creating popular businesses...")

	cat := domain.BusinessCategory{Name: "Home Cleaning"}
	db.Create(&cat)
	db.Create(&domain.PopularBusiness{
		CategoryID: cat.ID,
		Name:       "Shine Masters",
		Location:   "Samal-2, Almaty",
	})

	log.Println("Seed complete.")
}
