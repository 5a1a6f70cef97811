package stats

// Stat identifiers understood by the default registry
const (
	MaxHealth             = "maxHealth"
	MoveSpeed             = "moveSpeed"
	BaseDamage            = "baseDamage"
	CritChance            = "critChance"
	CritMultiplier        = "critMultiplier"
	AttackSpeedMultiplier = "attackSpeedMultiplier"
	ProjectileCount       = "projectileCount"
	ProjectileSpreadAngle = "projectileSpreadAngle"
	WeaponAttackSpeed     = "weaponAttackSpeed"
	ChainCount            = "chainCount"
	SplitCount            = "splitCount"
	Armor                 = "armor"
	DodgeChance           = "dodgeChance"
	XPGainMultiplier      = "xpGainMultiplier"
	CooldownReduction     = "cooldownReduction"
	WeaponDamageMin       = "weaponDamageMin"
	WeaponDamageMax       = "weaponDamageMax"
	WeaponDamage          = "weaponDamage"
	FireDamageMin         = "fireDamageMin"
	FireDamageMax         = "fireDamageMax"
	ColdDamageMin         = "coldDamageMin"
	ColdDamageMax         = "coldDamageMax"
	LightningDamageMin    = "lightningDamageMin"
	LightningDamageMax    = "lightningDamageMax"
	FireResistance        = "fireResistance"
	ColdResistance        = "coldResistance"
	LightningResistance   = "lightningResistance"
	ShockDamageChance     = "shockDamageChance"
	AllowedSkillTags      = "allowedSkillTags"
)
