// Package seed generates the demo dataset the portal starts with. It is the
// only producer of appointments besides the admin; any source of valid
// records could replace it.
package seed

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"civicconnect-api/internal/model"
	"civicconnect-api/internal/slot"
)

var names = []string{
	"Venkata Ramana Rao", "Srinivasa Murthy", "Lakshmi Prasanna", "Rajeswari Devi",
	"Murali Krishna", "Sreekanth Reddy", "Anitha Chowdary", "Gopalakrishna Pillai",
	"Subba Rao", "Padmavathiamma", "Chaitanya Varma", "Bhargavi Reddy",
	"Narasimha Murthy", "Savitri Devi", "Suresh Babu", "Kalyani Raman",
	"Satyanarayana Raju", "Jyothirmayi", "Raghava Rao", "Vimala Kumari",
	"Prabhakar Reddy", "Sita Mahalakshmi", "Mohan Babu", "Indira Priyadarshini",
	"Sekhar Kammula", "Amrutha Varshini", "Vishnu Vardhan", "Gayatri Devi",
	"Trivikram Srinivas", "Shanti Swaroop", "Ravi Shankar", "Lalitha Kumari",
	"Pawan Kumar", "Sneha Latha", "Balaji Rao", "Kausalya Devi",
	"Venkatesh Prasad", "Sujatha Reddy", "Arun Kumar", "Meenakshi Sundaram",
}

var topics = []string{
	"Complaint about erratic water supply in Ward 12.",
	"Request for speed breakers on the main market road.",
	"Inquiry regarding the delay in pension disbursement.",
	"Proposal for installing LED streetlights in the colony.",
	"Grievance regarding non-functioning drainage system.",
	"Request for a new public library in the community center.",
	"Discussion on garbage collection schedule and cleanliness.",
	"Reporting illegal encroachments on the local park land.",
	"Seeking assistance for a BPL card application.",
	"Discussing the quality of meals in the local mid-day meal scheme.",
	"Request for a health check-up camp for senior citizens.",
	"Concerns about rising cases of dengue in the locality.",
	"Request for repair of the damaged community hall roof.",
	"Application for a new borewell in the arid zone of the sector.",
	"Grievance regarding high electricity bills and meter accuracy.",
	"Seeking support for the local youth sports tournament.",
	"Discussing potential sites for a new vegetable market.",
	"Feedback on the recent road widening project.",
	"Inquiry about self-employment grants for women.",
	"Request for better security patrolling during night hours.",
}

var outcomes = []string{
	"Noted the complaint. Escalated to the Public Works Department for immediate action.",
	"Explained the budget constraints. Promised to prioritize the request in the next quarter.",
	"Resolved the issue on the spot by coordinating with the social welfare officer.",
	"Site visit scheduled for next Tuesday to assess the damage.",
	"Informed the constituent about the upcoming government scheme that addresses this.",
	"Collected necessary documents. Processing the application through the fast-track channel.",
	"Detailed discussion held. Constituent agreed to lead a local awareness drive.",
	"Forwarded the proposal to the Urban Development Committee for review.",
	"Issue partially resolved. Follow-up meeting required in 15 days.",
	"Completed the meeting. The constituent expressed satisfaction with the response.",
}

// Appointments returns ~80 demo records: ten for today, ten for tomorrow,
// the rest spread over the previous sixty days so the reports view has
// history to search. Office hours only (09:00-18:00).
func Appointments(now time.Time) []model.Appointment {
	slots := slot.Slots()
	out := make([]model.Appointment, 0, 80)

	for i := 0; i < 80; i++ {
		var dayOffset int
		switch {
		case i < 10:
			dayOffset = 0
		case i < 20:
			dayOffset = 1
		default:
			dayOffset = -(rand.Intn(60) + 1)
		}

		date := now.AddDate(0, 0, dayOffset).Format("2006-01-02")
		label := slots[9+rand.Intn(9)].Label

		status := model.StatusPending
		outcome := ""
		if dayOffset < 0 {
			if rand.Float64() < 0.15 {
				status = model.StatusMissed
			} else {
				status = model.StatusCompleted
				outcome = outcomes[rand.Intn(len(outcomes))]
			}
		}

		age := int64(dayOffset)
		if age < 0 {
			age = -age
		}

		out = append(out, model.Appointment{
			ID:          uuid.NewString(),
			Date:        date,
			TimeSlot:    label,
			Name:        names[rand.Intn(len(names))],
			Description: topics[rand.Intn(len(topics))],
			Outcome:     outcome,
			Status:      status,
			CreatedAt:   now.UnixMilli() - age*86400000 - rand.Int63n(3600000),
		})
	}
	return out
}
