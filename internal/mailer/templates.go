package mailer

import (
	"fmt"
	"strings"
	"time"

	"moshood-fashion/internal/model"
)

// Subjects for the notification digest, selected by mode.
const (
	SubjectWelcome           = "Thank You for Subscribing!"
	SubjectOrderConfirmation = "Order Confirmation"
	SubjectDailyDigest       = "Daily Fashion Finds: Discover Today's Must-Haves"
	SubjectWeekendDigest     = "It's the Weekend! Check Out Our Exclusive Offers"
)

const storeURL = "https://moshoodfashion.store"

// WelcomeBody renders the HTML sent after a newsletter subscription.
func WelcomeBody() string {
	var b strings.Builder
	b.WriteString(`<div style="max-width:600px;margin:0 auto;font-family:Arial, sans-serif;color:#333;">`)
	b.WriteString(`<div style="background:#f7f7f7;padding:20px;text-align:center;border-bottom:4px solid #3b82f6;">`)
	b.WriteString(`<h1 style="margin:0;color:#3b82f6;">Moshood Fashion</h1></div>`)
	b.WriteString(`<div style="padding:30px;background:#fff;">`)
	b.WriteString(`<h2 style="font-size:24px;text-align:center;">Thank You for Subscribing!</h2>`)
	b.WriteString(`<p style="font-size:16px;line-height:1.6;text-align:center;">We're excited to have you join our community. Get ready for exclusive deals, the latest fashion trends, and handpicked updates delivered straight to your inbox.</p>`)
	b.WriteString(`<div style="margin:30px 0;text-align:center;"><a href="` + storeURL + `" style="background:#3b82f6;color:#fff;padding:12px 24px;text-decoration:none;border-radius:4px;font-size:16px;">Visit Our Website</a></div>`)
	b.WriteString(`<p style="font-size:14px;color:#777;text-align:center;">Best wishes,<br/>Moshood Fashion Store Team</p></div>`)
	b.WriteString(footer())
	b.WriteString(`</div>`)
	return b.String()
}

// OrderConfirmationBody renders the HTML sent after a successful checkout.
func OrderConfirmationBody(orderDate string, items []model.OrderItem, total float64) string {
	var b strings.Builder
	b.WriteString(`<h1>Your Order Confirmation</h1>`)
	b.WriteString(fmt.Sprintf(`<p>Your order placed on %s has been successfully processed.</p>`, orderDate))
	b.WriteString(`<h2>Order Details:</h2><ul>`)
	for _, item := range items {
		b.WriteString(fmt.Sprintf(`<li>%s - Qty: %d - Price: NGN %s</li>`,
			item.Name, item.Quantity, formatAmount(item.Price)))
	}
	b.WriteString(`</ul>`)
	b.WriteString(fmt.Sprintf(`<p><strong>Total:</strong> NGN %s</p>`, formatAmount(total)))
	b.WriteString(`<p>Thank you for shopping with us!</p>`)
	return b.String()
}

// DigestSubject returns the notification subject for a mode.
func DigestSubject(weekend bool) string {
	if weekend {
		return SubjectWeekendDigest
	}
	return SubjectDailyDigest
}

// DigestBody renders the marketing digest featuring the given products.
// The copy depends only on the mode, so re-running with the same mode
// produces the same subject and framing text.
func DigestBody(weekend bool, products []model.Product) string {
	greeting := "Good Day!"
	intro := "Here are some exclusive recommendations for you today. Dive into the latest trends and explore new designs."
	if weekend {
		greeting = "Happy Weekend!"
		intro = "Enjoy our special weekend greetings! Discover exclusive offers curated just for the weekend. Grab one or two of your favorites and elevate your style."
	}

	var b strings.Builder
	b.WriteString(`<div style="max-width:600px;margin:20px auto;font-family:'Helvetica Neue', Helvetica, Arial, sans-serif;background:#fff;border:1px solid #eaeaea;border-radius:10px;overflow:hidden;">`)
	b.WriteString(`<div style="background:linear-gradient(135deg, #60a5fa, #3b82f6);padding:25px;text-align:center;"><h1 style="margin:0;color:#fff;font-size:28px;">Moshood Fashion</h1></div>`)
	b.WriteString(`<div style="padding:30px;">`)
	b.WriteString(fmt.Sprintf(`<h2 style="font-size:26px;text-align:center;color:#333;">%s</h2>`, greeting))
	b.WriteString(fmt.Sprintf(`<p style="font-size:16px;line-height:1.6;text-align:center;margin-bottom:30px;">%s</p>`, intro))
	b.WriteString(`<div>`)
	for _, p := range products {
		b.WriteString(productCard(p))
	}
	b.WriteString(`</div>`)
	b.WriteString(`<p style="font-size:14px;text-align:center;color:#777;margin-top:30px;">Explore more at our <a href="` + storeURL + `/product" style="color:#3b82f6;text-decoration:none;font-weight:bold;">products page</a>.</p>`)
	b.WriteString(`</div>`)
	b.WriteString(footer())
	b.WriteString(`</div>`)
	return b.String()
}

func productCard(p model.Product) string {
	var b strings.Builder
	b.WriteString(`<div style="border:1px solid #e0e0e0;padding:15px;margin-bottom:20px;border-radius:10px;text-align:center;">`)
	for _, url := range p.Images {
		b.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" style="width:100%%;height:auto;border-radius:6px;margin-bottom:8px;" />`, url, p.Name))
	}
	b.WriteString(fmt.Sprintf(`<h3 style="font-size:20px;color:#222;margin:10px 0 5px;">%s</h3>`, p.Name))
	b.WriteString(fmt.Sprintf(`<p style="font-size:16px;color:#555;margin-bottom:12px;">Price: NGN %s</p>`, formatAmount(p.Price)))
	b.WriteString(`<a href="` + storeURL + `/product" style="display:inline-block;padding:12px 20px;background:linear-gradient(135deg, #3b82f6, #60a5fa);color:#fff;text-decoration:none;border-radius:6px;font-size:16px;">Check it out</a>`)
	b.WriteString(`</div>`)
	return b.String()
}

func footer() string {
	return fmt.Sprintf(`<div style="background:#f7f7f7;padding:10px;text-align:center;font-size:12px;color:#aaa;">© %d Moshood Fashion Store. All rights reserved.</div>`,
		time.Now().Year())
}

// formatAmount renders an amount with thousands separators, dropping the
// decimals when they are zero.
func formatAmount(amount float64) string {
	whole := int64(amount)
	frac := amount - float64(whole)

	s := fmt.Sprintf("%d", whole)
	if whole < 0 {
		s = fmt.Sprintf("%d", -whole)
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")

	if whole < 0 {
		out = "-" + out
	}
	if frac > 0.004 {
		out += strings.TrimPrefix(fmt.Sprintf("%.2f", frac), "0")
	}
	return out
}
