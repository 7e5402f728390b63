package catalog

import "github.com/sql-tutor/backend/internal/models"

// Module IDs are stable; question IDs embed them.
var defaultModules = []ModuleInfo{
	{ID: 1, Name: "Data Definition and Data Manipulation Language", Description: "Learn CREATE, INSERT, UPDATE, DELETE operations"},
	{ID: 2, Name: "Single Row Functions", Description: "Master string, numeric, and date functions"},
	{ID: 3, Name: "Operators and Group Functions", Description: "Use WHERE clauses, GROUP BY, HAVING, aggregates"},
	{ID: 4, Name: "Multiple Table Operations", Description: "Join tables with INNER, LEFT, RIGHT, FULL joins"},
	{ID: 5, Name: "Subqueries", Description: "Write nested queries and correlated subqueries"},
	{ID: 6, Name: "Data Management and Views", Description: "Advanced database operations and optimization"},
}

// Default returns the built-in catalog of curated business-scenario
// questions. Modules without curated templates fall back to LLM
// generation at serving time and to generic context at resolution time.
func Default() *Catalog {
	return New(defaultModules, defaultQuestions)
}

var defaultQuestions = map[string]map[models.Difficulty][]Template{
	"Data Definition and Data Manipulation Language": {
		models.DifficultyEasy: {
			{
				Question: "🍕 **Food Delivery Startup**: You're launching a food delivery app. Create a 'restaurants' table to store: restaurant_id (primary key), restaurant_name, cuisine_type, delivery_area, phone_number, and is_active status. Then insert 2 sample restaurants.",
				ExpectedSQL: `CREATE TABLE restaurants (
    restaurant_id INT PRIMARY KEY AUTO_INCREMENT,
    restaurant_name VARCHAR(100) NOT NULL,
    cuisine_type VARCHAR(50),
    delivery_area VARCHAR(100),
    phone_number VARCHAR(20),
    is_active BOOLEAN DEFAULT TRUE
);

INSERT INTO restaurants (restaurant_name, cuisine_type, delivery_area, phone_number) VALUES
('Mario Pizza Palace', 'Italian', 'Downtown', '555-0123'),
('Dragon Garden', 'Chinese', 'Westside', '555-0456');`,
				Hints: []string{
					"AUTO_INCREMENT creates unique IDs automatically",
					"Use appropriate data types for each field",
					"BOOLEAN DEFAULT TRUE makes new restaurants active by default",
				},
			},
			{
				Question: "📚 **Public Library System**: A book 'The Great Gatsby' (book_id = 42) was returned today damaged. Update the books table to set status = 'damaged', return_date = today, and late_fee = 15.00 for this book.",
				ExpectedSQL: `UPDATE books
SET status = 'damaged',
    return_date = CURRENT_DATE,
    late_fee = 15.00
WHERE book_id = 42;`,
				Hints: []string{
					"UPDATE modifies existing records",
					"Use WHERE to target specific records only",
					"CURRENT_DATE automatically uses today's date",
				},
			},
		},
		models.DifficultyMedium: {
			{
				Question: "🛒 **E-commerce Cleanup**: Your online store needs to clean up old data. Delete all products where category = 'Seasonal' AND last_sold_date is older than 2 years ago AND inventory_count = 0. Then update all remaining 'Electronics' products to have free_shipping = TRUE.",
				ExpectedSQL: `DELETE FROM products
WHERE category = 'Seasonal'
  AND last_sold_date < DATE_SUB(CURRENT_DATE, INTERVAL 2 YEAR)
  AND inventory_count = 0;

UPDATE products
SET free_shipping = TRUE
WHERE category = 'Electronics';`,
				Hints: []string{
					"Always test DELETE conditions carefully",
					"DATE_SUB calculates dates in the past",
					"Run SELECT first to verify what will be deleted",
				},
			},
		},
	},

	"Single Row Functions": {
		models.DifficultyEasy: {
			{
				Question: "🏢 **Corporate Badge Generator**: The company needs employee name badges for a conference. Format each employee's information: full name in UPPERCASE, employee ID padded to 6 digits with leading zeros, and extract the department from their email (everything before @company.com). Use employees table.",
				ExpectedSQL: `SELECT
    UPPER(CONCAT(first_name, ' ', last_name)) AS badge_name,
    LPAD(employee_id, 6, '0') AS formatted_id,
    LEFT(email, POSITION('@' IN email) - 1) AS department
FROM employees;`,
				Hints: []string{
					"CONCAT joins strings together",
					"LPAD adds zeros to the left",
					"POSITION finds the location of @ symbol",
				},
			},
		},
		models.DifficultyMedium: {
			{
				Question: "💰 **Payroll Bonus Calculator**: Calculate year-end bonuses based on tenure: employees hired this year get 3% of salary, 1-2 years get 5%, 3-5 years get 8%, over 5 years get 12%. Show employee name, years of service (rounded to 1 decimal), and bonus amount.",
				ExpectedSQL: `SELECT
    CONCAT(first_name, ' ', last_name) AS employee_name,
    ROUND(DATEDIFF(CURRENT_DATE, hire_date) / 365.25, 1) AS years_service,
    CASE
        WHEN DATEDIFF(CURRENT_DATE, hire_date) < 365 THEN salary * 0.03
        WHEN DATEDIFF(CURRENT_DATE, hire_date) < 730 THEN salary * 0.05
        WHEN DATEDIFF(CURRENT_DATE, hire_date) < 1825 THEN salary * 0.08
        ELSE salary * 0.12
    END AS bonus_amount
FROM employees;`,
				Hints: []string{
					"DATEDIFF calculates days between dates",
					"Divide by 365.25 to account for leap years",
					"CASE WHEN handles conditional logic",
				},
			},
		},
	},

	"Operators and Group Functions": {
		models.DifficultyEasy: {
			{
				Question: "📊 **Daily Sales Dashboard**: Create a sales summary for store managers showing today's performance: total number of transactions, total sales revenue, average transaction amount, and the highest single sale. Use the transactions table.",
				ExpectedSQL: `SELECT
    COUNT(*) AS total_transactions,
    SUM(amount) AS total_revenue,
    ROUND(AVG(amount), 2) AS average_sale,
    MAX(amount) AS highest_sale
FROM transactions
WHERE DATE(transaction_date) = CURRENT_DATE;`,
				Hints: []string{
					"COUNT(*) counts all rows",
					"SUM adds up numeric values",
					"Use WHERE to filter to today only",
				},
			},
		},
		models.DifficultyMedium: {
			{
				Question: "🎯 **Customer Segmentation**: Identify VIP customers for a loyalty program. Find customers who have spent more than $5,000 total, show their total spending, order count, and average order value. Categorize as 'Platinum' (>$10k), 'Gold' ($5k-$10k). Sort by total spending.",
				ExpectedSQL: `SELECT
    customer_id,
    COUNT(*) AS order_count,
    SUM(order_total) AS total_spent,
    ROUND(AVG(order_total), 2) AS avg_order_value,
    CASE
        WHEN SUM(order_total) > 10000 THEN 'Platinum'
        ELSE 'Gold'
    END AS loyalty_tier
FROM orders
GROUP BY customer_id
HAVING SUM(order_total) > 5000
ORDER BY total_spent DESC;`,
				Hints: []string{
					"Use HAVING to filter groups after aggregation",
					"GROUP BY is required with aggregate functions",
					"CASE creates categories based on totals",
				},
			},
		},
	},
}
