package repository

import "joinerypro/internal/domain/entities"

func cloneClient(c entities.Client) entities.Client {
	if c.GPSLocation != nil {
		gps := *c.GPSLocation
		c.GPSLocation = &gps
	}
	return c
}

func cloneProject(p entities.Project) entities.Project {
	if p.Deadline != nil {
		d := *p.Deadline
		p.Deadline = &d
	}
	return p
}

func cloneItems(items []entities.DocumentItem) []entities.DocumentItem {
	if items == nil {
		return nil
	}
	out := make([]entities.DocumentItem, len(items))
	copy(out, items)
	return out
}

func cloneQuote(q entities.Quote) entities.Quote {
	q.Items = cloneItems(q.Items)
	return q
}

func cloneInvoice(i entities.Invoice) entities.Invoice {
	i.Items = cloneItems(i.Items)
	return i
}

func cloneSettings(s entities.AppSettings) entities.AppSettings {
	if s.SMTP != nil {
		smtp := *s.SMTP
		s.SMTP = &smtp
	}
	return s
}
