package domain

// PlanPeriod is the billing period of a plan.
type PlanPeriod string

const (
	PlanPeriodMonthly  PlanPeriod = "monthly"
	PlanPeriodYearly   PlanPeriod = "yearly"
	PlanPeriodLifetime PlanPeriod = "lifetime"
)

func (p PlanPeriod) String() string { return string(p) }

func (p PlanPeriod) IsValid() bool {
	switch p {
	case PlanPeriodMonthly, PlanPeriodYearly, PlanPeriodLifetime:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreated   AuditAction = "created"
	AuditActionUpdated   AuditAction = "updated"
	AuditActionDeleted   AuditAction = "deleted"
	AuditActionReordered AuditAction = "reordered"
	AuditActionRollback  AuditAction = "rollback"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionUpdated, AuditActionDeleted,
		AuditActionReordered, AuditActionRollback:
		return true
	}
	return false
}
