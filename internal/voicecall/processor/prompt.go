package processor

import (
	"fmt"
	"strings"
)

const Greeting = "Welcome to the Rolovic Health Clinic. Could you please provide your name and date of birth?"

const noInputMessage = "Sorry, I didn't catch that. Could you please repeat?"

// Slot is an appointment the agent may offer to the caller.
type Slot struct {
	Provider string
	Date     string
}

// AvailableSlots is the static list of bookable appointments.
var AvailableSlots = []Slot{
	{Provider: "Dr. Strangelove", Date: "July 2nd at 1:00 p.m."},
	{Provider: "Dr. Strangelove", Date: "July 2nd at 4:00 p.m."},
	{Provider: "Dr. Pickle", Date: "July 3rd at 11:00 a.m."},
	{Provider: "Dr. Shemp", Date: "July 5th at 9:00 a.m."},
}

// PromptPreamble returns the instructions handed to the dialogue policy.
func PromptPreamble(slots []Slot) string {
	var b strings.Builder
	b.WriteString(`I want you to act as call center agent for a health clinic being contacted by a prospective patient.
After greeting the patient, begin to ask questions to collect the information listed below.

You must collect the following information from the patient:
- Collect patient's name and date of birth
- Collect insurance information
    - Payer name and ID
- Ask if they have a referral, and to which physician
- Collect chief medical complaint/reason they are coming in
- Collect other demographics like address
- Collect contact information, both phone number and email
- Offer up best available providers and times from the data in the nested list below
`)
	for _, s := range slots {
		fmt.Fprintf(&b, "    - %s on %s\n", s.Provider, s.Date)
	}
	b.WriteString(`
Keep every reply short, it will be read aloud over the phone.
Once the patient chooses which appointment they want to book, call the action_collect_data tool with everything you collected.
Use the provider name and time exactly as listed above for booked_provider and booked_date.
`)
	return b.String()
}
