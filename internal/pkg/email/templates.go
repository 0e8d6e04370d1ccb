package email

// WelcomeTemplate greets a freshly registered account.
const WelcomeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px; border-radius: 5px;">
  <h2 style="text-align: center; color: #004D40;">Welcome to SnapHire</h2>
  <p>Dear <strong>{{.Name}}</strong>,</p>
  <p>Your account has been created. You can now browse photographers and book sessions.</p>
  {{if .PendingApproval}}
  <p>Your photographer profile is awaiting review. We will notify you once it is approved.</p>
  {{end}}
  <p style="text-align: center; font-size: 14px; color: #004D40;">Thank you for choosing SnapHire!</p>
</div>`

// BookingConfirmationTemplate is the confirmation plus invoice sent after a paid booking.
const BookingConfirmationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px; border-radius: 5px;">
  <h2 style="text-align: center; color: #004D40;">Booking Confirmation</h2>
  <p>Dear <strong>{{.ClientName}}</strong>,</p>
  <p>Your session with <strong>{{.PhotographerName}}</strong> has been successfully booked.</p>
  <h3 style="color: #FF6F61;">Session Details:</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Photographer:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px;">{{.PhotographerName}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Date:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px;">{{.Date}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Time Slot:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px;">{{.TimeSlot}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Status:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px;">Pending</td></tr>
  </table>
  <h3 style="color: #FF6F61;">Payment Summary:</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Amount Paid:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px;">${{.Amount}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Transaction ID:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px;">{{.TransactionID}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd; padding: 8px;"><strong>Payment Status:</strong></td><td style="border-bottom: 1px solid #ddd; padding: 8px; color: green;"><strong>Paid</strong></td></tr>
  </table>
  <p style="text-align: center; font-size: 14px; color: #555;">If you have any questions, please contact our support team.</p>
</div>`

// AppointmentStatusTemplate notifies a client of a status transition.
const AppointmentStatusTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px; border-radius: 5px;">
  <h2 style="text-align: center; color: #004D40;">Appointment Update</h2>
  <p>Dear <strong>{{.ClientName}}</strong>,</p>
  <p>Your session with <strong>{{.PhotographerName}}</strong> on <strong>{{.Date}}</strong> ({{.TimeSlot}}) is now <strong>{{.Status}}</strong>.</p>
  <p style="text-align: center; font-size: 14px; color: #004D40;">Thank you for choosing SnapHire!</p>
</div>`

// ProfileStatusTemplate notifies a photographer of an approval decision.
const ProfileStatusTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px; border-radius: 5px;">
  <h2 style="text-align: center; color: #004D40;">Profile Review</h2>
  <p>Dear <strong>{{.Name}}</strong>,</p>
  <p>Your photographer profile has been <strong>{{.Status}}</strong>.</p>
  {{if .Approved}}
  <p>Clients can now find you in the catalogue and book your sessions.</p>
  {{end}}
</div>`
