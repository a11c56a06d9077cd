// Package content holds the static informational pages of the shop.
package content

import "regexp"

// About is the store's about page.
const About = `About Dopamine99

At Dopamine99, we believe that fashion is more than just clothes; it's
an expression of individuality. Our carefully curated collection of
clothing and jewellery is designed to help you feel confident and
stylish, whether you're dressing for a special occasion or everyday
wear.

Our Story
Founded with a passion for quality and creativity, Dopamine99 brings
together timeless clothing pieces and stunning jewellery designs to
elevate your wardrobe.

What We Offer
- Clothing: trendy, comfortable, and versatile pieces for all occasions.
- Jewellery: exquisite designs that elevate your personal style.
- Personalized service: dedicated to finding the perfect match for you.

Our Mission
We aim to provide high-quality products at affordable prices, all while
supporting ethical practices and sustainable sourcing.

Sustainability
We strive to reduce our environmental impact through eco-friendly
packaging and sustainable materials.`

// Deliveries is the delivery policy page.
const Deliveries = `Deliveries

- We offer shipping within South Africa.
- Estimated delivery times are 5 business days for domestic orders and
  7 for international orders.
- Shipping fees are calculated at checkout. Free shipping is available
  for orders over $100.
- We are not responsible for lost, stolen, or delayed shipments after
  dispatch.`

// Terms is the terms-and-conditions page.
const Terms = `Terms & Conditions

Introduction
- Dopamine99 operates this website to sell clothing and jewellery.
- By using our website, you accept these terms.

Orders & Payment
- We accept Visa, Mastercard, and PayPal.
- Prices are in dollars and include applicable taxes unless stated
  otherwise.
- Orders are processed within 2 business days.
- We reserve the right to cancel orders due to pricing errors or stock
  unavailability.
- Once an order is placed, cancellations are only possible before
  shipping.

Product Descriptions & Pricing
- Colors may vary due to screen settings.
- Prices are subject to change without notice.

Privacy Policy & Data Protection
- Your personal information is handled in compliance with applicable
  data protection laws (e.g., GDPR, POPIA).
- We do not sell or share your information with third parties without
  your consent.

Liability & Disclaimers
- Our liability is limited to the amount paid for the product in
  question.

Dispute Resolution & Governing Law
- Disputes shall first be resolved through negotiation; unresolved
  disputes are subject to arbitration in South Africa.
- These terms are governed by the laws of South Africa.`

// QA is one FAQ entry.
type QA struct {
	Question string
	Answer   string
}

// FAQ lists the frequently asked questions shown in the footer.
func FAQ() []QA {
	return []QA{
		{
			Question: "What products do you sell?",
			Answer:   "We offer a wide range of clothing and jewelry, including shirts, dresses, accessories, and more.",
		},
		{
			Question: "How can I track my order?",
			Answer:   "You can track your order through the tracking link sent to your email once your order is shipped.",
		},
		{
			Question: "What is your return policy?",
			Answer:   "We offer a 30-day return policy for most items. Please check our Returns page for more details.",
		},
		{
			Question: "Do you offer international shipping?",
			Answer:   "Yes, we ship to several countries worldwide. Shipping fees and delivery times vary by location.",
		},
		{
			Question: "How can I contact customer service?",
			Answer:   "You can contact us via our support email or through our contact form on the website.",
		},
	}
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s is acceptable for the newsletter signup.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
