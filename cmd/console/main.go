// Command console is the interactive text front-end: a menu loop that
// drives the reservation core through its public operations, keeping its
// own lists of customers and bookings.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grandplaza/hotel-reservation/internal/application"
	"github.com/grandplaza/hotel-reservation/internal/config"
	"github.com/grandplaza/hotel-reservation/internal/domain"
	"github.com/grandplaza/hotel-reservation/internal/identity"
	"github.com/grandplaza/hotel-reservation/internal/logger"
)

const dateLayout = "2006-01-02"

type consoleApp struct {
	in             *bufio.Scanner
	hotel          *domain.Hotel
	bookingService *application.BookingService
	paymentService *application.PaymentService

	customers []*domain.Customer
	bookings  []*domain.Booking

	customerIDs identity.Generator
	bookingIDs  identity.Generator
	paymentIDs  identity.Generator
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	hotel, err := domain.NewHotel(cfg.Hotel.ID, cfg.Hotel.Name, cfg.Hotel.Location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create hotel: %v\n", err)
		os.Exit(1)
	}

	app := &consoleApp{
		in:             bufio.NewScanner(os.Stdin),
		hotel:          hotel,
		bookingService: application.NewBookingService(log),
		paymentService: application.NewPaymentService(log),
		customerIDs:    identity.NewSequence("CUST"),
		bookingIDs:     identity.NewSequence("BOOK"),
		paymentIDs:     identity.NewSequence("PAY"),
	}

	app.initializeHotel()
	app.run()
}

func (a *consoleApp) initializeHotel() {
	fmt.Println("\n=== Hotel Reservation System Initialized ===")
	fmt.Printf("Hotel: %s in %s\n", a.hotel.Name(), a.hotel.Location())

	seeds := []struct {
		number string
		kind   domain.RoomType
		price  float64
	}{
		{"101", domain.RoomTypeSingle, 100.0},
		{"102", domain.RoomTypeSingle, 100.0},
		{"103", domain.RoomTypeDouble, 150.0},
		{"104", domain.RoomTypeDouble, 150.0},
		{"105", domain.RoomTypeSuite, 300.0},
	}
	for _, s := range seeds {
		room, err := domain.NewRoom(s.number, s.kind, s.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed room %s: %v\n", s.number, err)
			os.Exit(1)
		}
		if err := a.hotel.AddRoom(room); err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed room %s: %v\n", s.number, err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d rooms added to the hotel.\n\n", a.hotel.RoomCount())
}

func (a *consoleApp) run() {
	for {
		a.displayMainMenu()
		switch a.promptInt("Enter your choice: ") {
		case 1:
			a.addCustomer()
		case 2:
			a.listCustomers()
		case 3:
			a.createBooking()
		case 4:
			a.viewAvailableRooms()
		case 5:
			a.viewAllBookings()
		case 6:
			a.viewHotelInfo()
		case 7:
			fmt.Println("\n=== Thank you for using Hotel Reservation System ===")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (a *consoleApp) displayMainMenu() {
	fmt.Println("\n========== MAIN MENU ==========")
	fmt.Println("1. Add New Customer")
	fmt.Println("2. View All Customers")
	fmt.Println("3. Create Booking")
	fmt.Println("4. View Available Rooms")
	fmt.Println("5. View All Bookings")
	fmt.Println("6. View Hotel Information")
	fmt.Println("7. Exit")
	fmt.Println("==============================")
}

func (a *consoleApp) addCustomer() {
	fmt.Println("\n--- Add New Customer ---")
	name := a.promptLine("Enter customer name: ")
	email := a.promptLine("Enter email: ")

	customer, err := domain.NewCustomer(a.customerIDs.NextID(), name, email)
	if err != nil {
		fmt.Printf("Could not add customer: %v\n", err)
		return
	}
	a.customers = append(a.customers, customer)

	fmt.Println("Customer added successfully!")
	fmt.Printf("  ID: %s, Name: %s, Email: %s\n", customer.ID(), customer.Name(), customer.Email())
}

func (a *consoleApp) listCustomers() {
	fmt.Println("\n--- All Customers ---")
	if len(a.customers) == 0 {
		fmt.Println("No customers found.")
		return
	}
	for i, c := range a.customers {
		fmt.Printf("%d. ID: %s | Name: %s | Email: %s\n", i+1, c.ID(), c.Name(), c.Email())
	}
}

func (a *consoleApp) createBooking() {
	fmt.Println("\n--- Create Booking ---")
	if len(a.customers) == 0 {
		fmt.Println("No customers available. Please add a customer first.")
		return
	}

	a.listCustomers()
	custChoice := a.promptInt("Select customer number: ") - 1
	if custChoice < 0 || custChoice >= len(a.customers) {
		fmt.Println("Invalid customer selection.")
		return
	}
	customer := a.customers[custChoice]

	roomType, ok := a.promptRoomType()
	if !ok {
		return
	}

	var available []*domain.Room
	for room := range a.hotel.AvailableRooms(roomType) {
		available = append(available, room)
	}
	if len(available) == 0 {
		fmt.Printf("No %s rooms available.\n", roomType)
		return
	}

	fmt.Printf("Available %s rooms:\n", roomType)
	for i, r := range available {
		fmt.Printf("%d. Room %s - $%.2f/night\n", i+1, r.Number(), r.NightlyPrice())
	}

	roomChoice := a.promptInt(fmt.Sprintf("Select room number (1-%d): ", len(available))) - 1
	if roomChoice < 0 || roomChoice >= len(available) {
		fmt.Println("Invalid room selection.")
		return
	}
	room := available[roomChoice]

	checkIn, ok := a.promptDate("Enter check-in date (yyyy-MM-dd): ")
	if !ok {
		return
	}
	checkOut, ok := a.promptDate("Enter check-out date (yyyy-MM-dd): ")
	if !ok {
		return
	}
	if !checkOut.After(checkIn) {
		fmt.Println("Check-out date must be after check-in date.")
		return
	}

	booking, err := a.bookingService.CreateBooking(a.bookingIDs.NextID(), customer, room, checkIn, checkOut)
	if err != nil {
		fmt.Printf("Could not create booking: %v\n", err)
		return
	}
	a.bookings = append(a.bookings, booking)

	totalPrice := booking.TotalPrice()
	fmt.Println("\nBooking created successfully!")
	fmt.Printf("  Booking ID: %s\n", booking.ID())
	fmt.Printf("  Customer: %s\n", customer.Name())
	fmt.Printf("  Room: %s (%s)\n", room.Number(), room.Type())
	fmt.Printf("  Check-in: %s\n", checkIn.Format(dateLayout))
	fmt.Printf("  Check-out: %s\n", checkOut.Format(dateLayout))
	fmt.Printf("  Total Price: $%.2f\n", totalPrice)

	answer := strings.ToLower(a.promptLine("\nProcess payment now? (yes/no): "))
	if answer == "yes" || answer == "y" {
		payment, err := a.paymentService.CreatePayment(a.paymentIDs.NextID(), booking, totalPrice)
		if err != nil {
			fmt.Printf("Could not create payment: %v\n", err)
			return
		}
		if err := a.paymentService.ProcessPayment(payment); err != nil {
			fmt.Printf("Could not process payment: %v\n", err)
			return
		}
		fmt.Println("Payment processed successfully!")
		fmt.Printf("  Payment ID: %s\n", payment.ID())
		fmt.Printf("  Amount: $%.2f\n", payment.Amount())
		fmt.Printf("  Status: %s\n", payment.Status())
	}
}

func (a *consoleApp) viewAvailableRooms() {
	fmt.Println("\n--- Available Rooms ---")
	roomType, ok := a.promptRoomType()
	if !ok {
		return
	}

	found := false
	for r := range a.hotel.AvailableRooms(roomType) {
		if !found {
			fmt.Printf("Available %s rooms:\n", roomType)
			found = true
		}
		fmt.Printf("  - Room %s | Price: $%.2f/night\n", r.Number(), r.NightlyPrice())
	}
	if !found {
		fmt.Printf("No %s rooms available.\n", roomType)
	}
}

func (a *consoleApp) viewAllBookings() {
	fmt.Println("\n--- All Bookings ---")
	if len(a.bookings) == 0 {
		fmt.Println("No bookings found.")
		return
	}
	for _, b := range a.bookings {
		fmt.Printf("\nBooking ID: %s\n", b.ID())
		fmt.Printf("  Customer: %s\n", b.Customer().Name())
		fmt.Printf("  Room: %s (%s)\n", b.Room().Number(), b.Room().Type())
		fmt.Printf("  Check-in: %s\n", b.CheckIn().Format(dateLayout))
		fmt.Printf("  Check-out: %s\n", b.CheckOut().Format(dateLayout))
		fmt.Printf("  Total Price: $%.2f\n", b.TotalPrice())
		fmt.Printf("  Status: %s\n", b.Status())
	}
}

func (a *consoleApp) viewHotelInfo() {
	fmt.Println("\n--- Hotel Information ---")
	fmt.Printf("Hotel ID: %s\n", a.hotel.ID())
	fmt.Printf("Hotel Name: %s\n", a.hotel.Name())
	fmt.Printf("Location: %s\n", a.hotel.Location())
	fmt.Printf("Total Rooms: %d\n", a.hotel.RoomCount())
	fmt.Println("\nRoom Breakdown:")
	counts := a.hotel.CountByType()
	for _, t := range []domain.RoomType{domain.RoomTypeSingle, domain.RoomTypeDouble, domain.RoomTypeSuite} {
		fmt.Printf("  - %s: %d\n", t, counts[t])
	}
}

func (a *consoleApp) promptLine(prompt string) string {
	fmt.Print(prompt)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *consoleApp) promptInt(prompt string) int {
	n, err := strconv.Atoi(a.promptLine(prompt))
	if err != nil {
		fmt.Println("Invalid input. Please enter a number.")
		return -1
	}
	return n
}

func (a *consoleApp) promptRoomType() (domain.RoomType, bool) {
	input := a.promptLine("Enter room type (SINGLE/DOUBLE/SUITE): ")
	roomType, err := domain.ParseRoomType(input)
	if err != nil {
		fmt.Println("Invalid room type.")
		return "", false
	}
	return roomType, true
}

func (a *consoleApp) promptDate(prompt string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, a.promptLine(prompt))
	if err != nil {
		fmt.Println("Invalid date format. Please use yyyy-MM-dd.")
		return time.Time{}, false
	}
	return date, true
}
