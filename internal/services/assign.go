package services

import "carpoolreminders/internal/domain"

// Assign groups participants into self-transport, cars and a waitlist.
//
// Self-transport participants are always admitted and count toward capacity.
// Drivers then open cars in input order while fewer than capacity people are
// placed, and each car takes riders in input order until its seats, the riders,
// or the capacity run out. Drivers left over once capacity is reached are not
// placed anywhere; riders left over form the waitlist.
//
// Assign does not modify participants and is safe for concurrent use. Callers
// must reject a non-positive capacity beforehand.
func Assign(participants []domain.Participant, capacity int) domain.Assignment {
	result := domain.Assignment{
		SelfTransport: []domain.Participant{},
		Cars:          []domain.Car{},
		Waitlist:      []domain.Participant{},
	}

	var drivers, riders []domain.Participant
	for _, p := range participants {
		switch p.Category {
		case domain.CategorySelfTransport:
			result.SelfTransport = append(result.SelfTransport, p)
		case domain.CategoryDriver:
			drivers = append(drivers, p)
		case domain.CategoryRider:
			riders = append(riders, p)
		case domain.CategoryUnrecognized:
		}
	}

	placed := len(result.SelfTransport)
	for len(drivers) > 0 && placed < capacity {
		driver := drivers[0]
		drivers = drivers[1:]
		placed++

		car := domain.Car{Driver: driver, Passengers: []domain.Participant{}}
		seats := max(0, driver.SeatCapacity)
		for len(car.Passengers) < seats && len(riders) > 0 && placed < capacity {
			car.Passengers = append(car.Passengers, riders[0])
			riders = riders[1:]
			placed++
		}
		result.Cars = append(result.Cars, car)
	}

	result.Waitlist = append(result.Waitlist, riders...)
	return result
}
